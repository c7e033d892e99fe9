package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

// searchLimit caps results per entity type; the frontend shows a short
// preview list per page, not a full result set.
const searchLimit = 5

type PageSuggestion struct {
	Page string `json:"page"`
	Path string `json:"path"`
}

type SearchOutput struct {
	Leads           []entity.Lead           `json:"leads"`
	Deals           []entity.Deal           `json:"deals"`
	Invoices        []entity.Invoice        `json:"invoices"`
	Accounts        []entity.Account        `json:"accounts"`
	Contacts        []entity.Contact        `json:"contacts"`
	Complaints      []entity.Complaint      `json:"complaints"`
	Tasks           []entity.Task           `json:"tasks"`
	ScheduledEvents []entity.ScheduledEvent `json:"scheduledEvents"`
	Suggestions     []PageSuggestion        `json:"suggestions"`
}

type SearchUseCase struct {
	Leads           LeadSearcher
	Deals           DealSearcher
	Invoices        InvoiceSearcher
	Accounts        AccountSearcher
	Contacts        ContactSearcher
	Complaints      ComplaintSearcher
	Tasks           TaskSearcher
	ScheduledEvents ScheduledEventSearcher
}

func NewSearchUseCase(
	leads LeadSearcher,
	deals DealSearcher,
	invoices InvoiceSearcher,
	accounts AccountSearcher,
	contacts ContactSearcher,
	complaints ComplaintSearcher,
	tasks TaskSearcher,
	scheduledEvents ScheduledEventSearcher,
) *SearchUseCase {
	return &SearchUseCase{
		Leads:           leads,
		Deals:           deals,
		Invoices:        invoices,
		Accounts:        accounts,
		Contacts:        contacts,
		Complaints:      complaints,
		Tasks:           tasks,
		ScheduledEvents: scheduledEvents,
	}
}

// Execute fans the query out over all eight collections concurrently. Any
// collection error fails the whole search; there are no partial results.
func (uc *SearchUseCase) Execute(ctx context.Context, q string) (*SearchOutput, error) {
	if strings.TrimSpace(q) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "search query is required"}
	}

	out := &SearchOutput{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.Leads, err = uc.Leads.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Deals, err = uc.Deals.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Invoices, err = uc.Invoices.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Accounts, err = uc.Accounts.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Contacts, err = uc.Contacts.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Complaints, err = uc.Complaints.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.Tasks, err = uc.Tasks.Search(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		out.ScheduledEvents, err = uc.ScheduledEvents.Search(ctx, q, searchLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.Suggestions = buildSuggestions(out)
	return out, nil
}

func buildSuggestions(out *SearchOutput) []PageSuggestion {
	s := []PageSuggestion{}
	if len(out.Leads) > 0 {
		s = append(s, PageSuggestion{Page: "Leads", Path: "/lead"})
	}
	if len(out.Deals) > 0 {
		s = append(s, PageSuggestion{Page: "Deals", Path: "/deal"})
	}
	if len(out.Invoices) > 0 {
		s = append(s, PageSuggestion{Page: "Invoices", Path: "/invoice"})
	}
	if len(out.Accounts) > 0 {
		s = append(s, PageSuggestion{Page: "Accounts", Path: "/account"})
	}
	if len(out.Contacts) > 0 {
		s = append(s, PageSuggestion{Page: "Contacts", Path: "/contact"})
	}
	if len(out.Complaints) > 0 {
		s = append(s, PageSuggestion{Page: "Complaints", Path: "/complaint"})
	}
	if len(out.Tasks) > 0 {
		s = append(s, PageSuggestion{Page: "Tasks", Path: "/task"})
	}
	if len(out.ScheduledEvents) > 0 {
		s = append(s, PageSuggestion{Page: "Scheduled Events", Path: "/scheduled-events"})
	}
	return s
}
