package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	InvoiceStatusPaid   = "Paid"
	InvoiceStatusUnpaid = "Unpaid"
)

func IsValidInvoiceStatus(s string) bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusUnpaid
}

// Invoice totals are computed on the client and stored as sent; the server does
// not recompute discount or GST math.
type Invoice struct {
	ID              bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyName     string        `json:"companyName" bson:"companyName"`
	CustomerName    string        `json:"customerName" bson:"customerName"`
	ContactNumber   string        `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	EmailAddress    string        `json:"emailAddress,omitempty" bson:"emailAddress,omitempty"`
	Address         string        `json:"address,omitempty" bson:"address,omitempty"`
	GSTNumber       string        `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	ProductName     string        `json:"productName" bson:"productName"`
	Amount          float64       `json:"amount" bson:"amount"`
	Discount        float64       `json:"discount" bson:"discount"`
	GSTRate         float64       `json:"gstRate" bson:"gstRate"`
	Status          string        `json:"status" bson:"status"`
	Date            time.Time     `json:"date" bson:"date"`
	EndDate         time.Time     `json:"endDate,omitempty" bson:"endDate,omitempty"`
	TotalWithoutGST float64       `json:"totalWithoutGst" bson:"totalWithoutGst"`
	TotalWithGST    float64       `json:"totalWithGst" bson:"totalWithGst"`
	PaidAmount      float64       `json:"paidAmount" bson:"paidAmount"`
	RemainingAmount float64       `json:"remainingAmount" bson:"remainingAmount"`
	CreatedAt       time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (i *Invoice) Normalize() {
	if i.Status == "" {
		i.Status = InvoiceStatusUnpaid
	}
}

func (i *Invoice) Validate() error {
	if i.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if i.CustomerName == "" {
		return errors.New("customerName is required")
	}
	if i.ProductName == "" {
		return errors.New("productName is required")
	}
	if i.Amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if !IsValidInvoiceStatus(i.Status) {
		return errors.New("status must be Paid or Unpaid")
	}
	return nil
}

type InvoiceRepositoryInterface interface {
	Create(ctx context.Context, inv *Invoice) error
	FindAll(ctx context.Context, status string) ([]Invoice, error)
	FindByID(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) (*Invoice, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]Invoice, error)
}
