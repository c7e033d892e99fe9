package usecase

import (
	"context"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

// Mailer sends the account mails. Implemented by infra/mail.
type Mailer interface {
	SendVerification(to, name, token string) error
	SendPasswordReset(to, name, token string) error
}

// One searcher per searchable collection; the search usecase fans out over
// all of them. Implemented by the database repositories.

type LeadSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Lead, error)
}

type DealSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Deal, error)
}

type InvoiceSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Invoice, error)
}

type AccountSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Account, error)
}

type ContactSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Contact, error)
}

type ComplaintSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Complaint, error)
}

type TaskSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.Task, error)
}

type ScheduledEventSearcher interface {
	Search(ctx context.Context, q string, limit int64) ([]entity.ScheduledEvent, error)
}
