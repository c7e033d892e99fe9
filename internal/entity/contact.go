package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Contact struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CompanyName   string        `json:"companyName" bson:"companyName"`
	CustomerName  string        `json:"customerName" bson:"customerName"`
	ContactNumber string        `json:"contactNumber" bson:"contactNumber"`
	EmailAddress  string        `json:"emailAddress,omitempty" bson:"emailAddress,omitempty"`
	Address       string        `json:"address,omitempty" bson:"address,omitempty"`
	GSTNumber     string        `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (c *Contact) Validate() error {
	if c.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if c.CustomerName == "" {
		return errors.New("customerName is required")
	}
	if c.ContactNumber == "" {
		return errors.New("contactNumber is required")
	}
	return nil
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, contact *Contact) error
	FindAll(ctx context.Context) ([]Contact, error)
	FindByID(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Contact, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]Contact, error)
}
