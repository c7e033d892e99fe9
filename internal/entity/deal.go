package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Deals share the pipeline stages of leads; a deal is a lead that is being worked.
const (
	DealStatusNew        = "New"
	DealStatusDiscussion = "Discussion"
	DealStatusDemo       = "Demo"
	DealStatusProposal   = "Proposal"
	DealStatusDecided    = "Decided"
)

var dealStatuses = []string{
	DealStatusNew,
	DealStatusDiscussion,
	DealStatusDemo,
	DealStatusProposal,
	DealStatusDecided,
}

func IsValidDealStatus(s string) bool {
	for _, st := range dealStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Deal struct {
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

func (d *Deal) Normalize() {
	if d.Status == "" {
		d.Status = DealStatusNew
	}
}

func (d *Deal) Validate() error {
	if d.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if d.CustomerName == "" {
		return errors.New("customerName is required")
	}
	if d.ContactNumber == "" {
		return errors.New("contactNumber is required")
	}
	if d.EmailAddress == "" {
		return errors.New("emailAddress is required")
	}
	if d.ProductName == "" {
		return errors.New("productName is required")
	}
	if !IsValidDealStatus(d.Status) {
		return errors.New("status must be one of New, Discussion, Demo, Proposal, Decided")
	}
	return nil
}

type DealRepositoryInterface interface {
	Create(ctx context.Context, deal *Deal) error
	FindAll(ctx context.Context, status string) ([]Deal, error)
	FindByID(ctx context.Context, id string) (*Deal, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Deal, error)
	UpdateStatus(ctx context.Context, id, status string) (*Deal, error)
	Delete(ctx context.Context, id string) error
	FindByMonth(ctx context.Context, year, month int) ([]Deal, error)
	FindByYear(ctx context.Context, year int) ([]Deal, error)
	FindByDate(ctx context.Context, day time.Time) ([]Deal, error)
	Search(ctx context.Context, q string, limit int64) ([]Deal, error)
}
