package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	CaseStatusPending    = "Pending"
	CaseStatusInProgress = "InProgress"
	CaseStatusResolved   = "Resolved"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

func IsValidCaseStatus(s string) bool {
	return s == CaseStatusPending || s == CaseStatusInProgress || s == CaseStatusResolved
}

func IsValidPriority(s string) bool {
	return s == PriorityHigh || s == PriorityMedium || s == PriorityLow
}

type Complaint struct {
	ID             bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ComplainerName string        `json:"complainerName" bson:"complainerName"`
	CompanyName    string        `json:"companyName" bson:"companyName"`
	ContactNumber  string        `json:"contactNumber" bson:"contactNumber"`
	EmailAddress   string        `json:"emailAddress,omitempty" bson:"emailAddress,omitempty"`
	Subject        string        `json:"subject" bson:"subject"`
	Date           time.Time     `json:"date" bson:"date"`
	CaseStatus     string        `json:"caseStatus" bson:"caseStatus"`
	Priority       string        `json:"priority" bson:"priority"`
	CaseOrigin     string        `json:"caseOrigin,omitempty" bson:"caseOrigin,omitempty"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (c *Complaint) Normalize() {
	if c.CaseStatus == "" {
		c.CaseStatus = CaseStatusPending
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
}

func (c *Complaint) Validate() error {
	if c.ComplainerName == "" {
		return errors.New("complainerName is required")
	}
	if c.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if c.ContactNumber == "" {
		return errors.New("contactNumber is required")
	}
	if c.Subject == "" {
		return errors.New("subject is required")
	}
	if !IsValidCaseStatus(c.CaseStatus) {
		return errors.New("caseStatus must be Pending, InProgress or Resolved")
	}
	if !IsValidPriority(c.Priority) {
		return errors.New("priority must be High, Medium or Low")
	}
	return nil
}

type ComplaintRepositoryInterface interface {
	Create(ctx context.Context, c *Complaint) error
	FindAll(ctx context.Context) ([]Complaint, error)
	FindByID(ctx context.Context, id string) (*Complaint, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Complaint, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]Complaint, error)
}
