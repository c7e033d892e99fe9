package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type leadSearcherMock struct{ mock.Mock }

func (m *leadSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Lead, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

type dealSearcherMock struct{ mock.Mock }

func (m *dealSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Deal, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Deal), args.Error(1)
}

type invoiceSearcherMock struct{ mock.Mock }

func (m *invoiceSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Invoice, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

type accountSearcherMock struct{ mock.Mock }

func (m *accountSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Account, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Account), args.Error(1)
}

type contactSearcherMock struct{ mock.Mock }

func (m *contactSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Contact, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

type complaintSearcherMock struct{ mock.Mock }

func (m *complaintSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Complaint, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Complaint), args.Error(1)
}

type taskSearcherMock struct{ mock.Mock }

func (m *taskSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.Task, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Task), args.Error(1)
}

type scheduledEventSearcherMock struct{ mock.Mock }

func (m *scheduledEventSearcherMock) Search(ctx context.Context, q string, limit int64) ([]entity.ScheduledEvent, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScheduledEvent), args.Error(1)
}

type searchMocks struct {
	leads           *leadSearcherMock
	deals           *dealSearcherMock
	invoices        *invoiceSearcherMock
	accounts        *accountSearcherMock
	contacts        *contactSearcherMock
	complaints      *complaintSearcherMock
	tasks           *taskSearcherMock
	scheduledEvents *scheduledEventSearcherMock
}

func newSearchMocks() *searchMocks {
	return &searchMocks{
		leads:           &leadSearcherMock{},
		deals:           &dealSearcherMock{},
		invoices:        &invoiceSearcherMock{},
		accounts:        &accountSearcherMock{},
		contacts:        &contactSearcherMock{},
		complaints:      &complaintSearcherMock{},
		tasks:           &taskSearcherMock{},
		scheduledEvents: &scheduledEventSearcherMock{},
	}
}

func (m *searchMocks) useCase() *SearchUseCase {
	return NewSearchUseCase(
		m.leads, m.deals, m.invoices, m.accounts,
		m.contacts, m.complaints, m.tasks, m.scheduledEvents,
	)
}

// expectEmpty stubs every searcher to find nothing.
func (m *searchMocks) expectEmpty(q string) {
	m.leads.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Lead{}, nil).Maybe()
	m.deals.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Deal{}, nil).Maybe()
	m.invoices.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Invoice{}, nil).Maybe()
	m.accounts.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Account{}, nil).Maybe()
	m.contacts.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Contact{}, nil).Maybe()
	m.complaints.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Complaint{}, nil).Maybe()
	m.tasks.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.Task{}, nil).Maybe()
	m.scheduledEvents.On("Search", mock.Anything, q, int64(searchLimit)).Return([]entity.ScheduledEvent{}, nil).Maybe()
}

func TestSearchEmptyQuery(t *testing.T) {
	uc := newSearchMocks().useCase()

	out, err := uc.Execute(context.Background(), "   ")
	assert.Nil(t, out)
	assert.Error(t, err)

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestSearchSingleTypeHit(t *testing.T) {
	m := newSearchMocks()
	m.expectEmpty("acme")
	m.leads.ExpectedCalls = nil
	m.leads.On("Search", mock.Anything, "acme", int64(searchLimit)).
		Return([]entity.Lead{{CompanyName: "Acme"}}, nil)

	out, err := m.useCase().Execute(context.Background(), "acme")
	assert.NoError(t, err)
	assert.Len(t, out.Leads, 1)
	assert.Empty(t, out.Deals)

	// Only the page with hits is suggested.
	assert.Equal(t, []PageSuggestion{{Page: "Leads", Path: "/lead"}}, out.Suggestions)
}

func TestSearchMultipleTypeHits(t *testing.T) {
	m := newSearchMocks()
	m.expectEmpty("acme")
	m.invoices.ExpectedCalls = nil
	m.invoices.On("Search", mock.Anything, "acme", int64(searchLimit)).
		Return([]entity.Invoice{{CompanyName: "Acme"}}, nil)
	m.tasks.ExpectedCalls = nil
	m.tasks.On("Search", mock.Anything, "acme", int64(searchLimit)).
		Return([]entity.Task{{Subject: "Call Acme"}}, nil)

	out, err := m.useCase().Execute(context.Background(), "acme")
	assert.NoError(t, err)
	assert.Equal(t, []PageSuggestion{
		{Page: "Invoices", Path: "/invoice"},
		{Page: "Tasks", Path: "/task"},
	}, out.Suggestions)
}

func TestSearchCollectionErrorFailsWhole(t *testing.T) {
	m := newSearchMocks()
	m.expectEmpty("acme")
	m.deals.ExpectedCalls = nil
	m.deals.On("Search", mock.Anything, "acme", int64(searchLimit)).
		Return(nil, errors.New("connection reset"))

	out, err := m.useCase().Execute(context.Background(), "acme")
	assert.Nil(t, out)
	assert.EqualError(t, err, "connection reset")
}
