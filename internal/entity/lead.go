package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Lead statuses mirror the columns of the lead Kanban board.
const (
	LeadStatusNew        = "New"
	LeadStatusDiscussion = "Discussion"
	LeadStatusDemo       = "Demo"
	LeadStatusProposal   = "Proposal"
	LeadStatusDecided    = "Decided"
)

var leadStatuses = []string{
	LeadStatusNew,
	LeadStatusDiscussion,
	LeadStatusDemo,
	LeadStatusProposal,
	LeadStatusDecided,
}

func IsValidLeadStatus(s string) bool {
	for _, st := range leadStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Lead struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyName   string        `json:"companyName" bson:"companyName"`
	CustomerName  string        `json:"customerName" bson:"customerName"`
	ContactNumber string        `json:"contactNumber" bson:"contactNumber"`
	EmailAddress  string        `json:"emailAddress" bson:"emailAddress"`
	Address       string        `json:"address,omitempty" bson:"address,omitempty"`
	ProductName   string        `json:"productName" bson:"productName"`
	Amount        float64       `json:"amount" bson:"amount"`
	GSTNumber     string        `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	Status        string        `json:"status" bson:"status"`
	Date          time.Time     `json:"date" bson:"date"`
	EndDate       time.Time     `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive      bool          `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Normalize fills schema defaults before validation.
func (l *Lead) Normalize() {
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
}

func (l *Lead) Validate() error {
	if l.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if l.CustomerName == "" {
		return errors.New("customerName is required")
	}
	if l.ContactNumber == "" {
		return errors.New("contactNumber is required")
	}
	if l.EmailAddress == "" {
		return errors.New("emailAddress is required")
	}
	if l.ProductName == "" {
		return errors.New("productName is required")
	}
	if !IsValidLeadStatus(l.Status) {
		return errors.New("status must be one of New, Discussion, Demo, Proposal, Decided")
	}
	return nil
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context, status string) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*Lead, error)
	Delete(ctx context.Context, id string) error
	FindByMonth(ctx context.Context, year, month int) ([]Lead, error)
	FindByYear(ctx context.Context, year int) ([]Lead, error)
	FindByDate(ctx context.Context, day time.Time) ([]Lead, error)
	Search(ctx context.Context, q string, limit int64) ([]Lead, error)
}
