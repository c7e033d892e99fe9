package entity

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID                bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string        `json:"name" bson:"name"`
	Email             string        `json:"email" bson:"email"`
	Password          string        `json:"-" bson:"password"` // bcrypt hash, never in JSON
	Verified          bool          `json:"verified" bson:"verified"`
	VerifyToken       string        `json:"-" bson:"verifyToken,omitempty"`
	VerifyTokenExpiry time.Time     `json:"-" bson:"verifyTokenExpiry,omitempty"`
	ResetToken        string        `json:"-" bson:"resetToken,omitempty"`
	ResetTokenExpiry  time.Time     `json:"-" bson:"resetTokenExpiry,omitempty"`
	FirstLogin        bool          `json:"firstLogin" bson:"firstLogin"`
	CreatedAt         time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if u.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return errors.New("email is invalid")
	}
	return nil
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByVerifyToken(ctx context.Context, token string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, id string, fields map[string]any) (*User, error)
}
