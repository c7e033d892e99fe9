package entity

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	AccountTypeCurrent = "Current"
	AccountTypeSavings = "Savings"
	AccountTypeOther   = "Other"
)

func IsValidAccountType(s string) bool {
	return s == AccountTypeCurrent || s == AccountTypeSavings || s == AccountTypeOther
}

type Account struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AccountName   string        `json:"accountName" bson:"accountName"`
	AccountNumber string        `json:"accountNumber" bson:"accountNumber"`
	BankName      string        `json:"bankName" bson:"bankName"`
	AccountType   string        `json:"accountType" bson:"accountType"`
	IFSCCode      string        `json:"ifscCode,omitempty" bson:"ifscCode,omitempty"`
	UPIID         string        `json:"upiId,omitempty" bson:"upiId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (a *Account) Normalize() {
	if a.AccountType == "" {
		a.AccountType = AccountTypeCurrent
	}
}

func (a *Account) Validate() error {
	if a.AccountName == "" {
		return errors.New("accountName is required")
	}
	if a.AccountNumber == "" {
		return errors.New("accountNumber is required")
	}
	if a.BankName == "" {
		return errors.New("bankName is required")
	}
	if !IsValidAccountType(a.AccountType) {
		return errors.New("accountType must be Current, Savings or Other")
	}
	return nil
}

type AccountRepositoryInterface interface {
	Create(ctx context.Context, acc *Account) error
	FindAll(ctx context.Context) ([]Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Account, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, limit int64) ([]Account, error)
}
