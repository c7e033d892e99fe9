package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

const (
	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token      string       `json:"token"`
	User       *entity.User `json:"user"`
	FirstLogin bool         `json:"firstLogin"`
}

type AuthUseCase struct {
	Users    entity.UserRepositoryInterface
	Mailer   Mailer
	Sessions *SessionStore
}

func NewAuthUseCase(users entity.UserRepositoryInterface, mailer Mailer, sessions *SessionStore) *AuthUseCase {
	return &AuthUseCase{
		Users:    users,
		Mailer:   mailer,
		Sessions: sessions,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:              input.Name,
		Email:             input.Email,
		Password:          string(hash),
		VerifyToken:       newToken(),
		VerifyTokenExpiry: time.Now().Add(verifyTokenTTL),
		FirstLogin:        true,
	}
	if err := user.Validate(); err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: "EMAIL_TAKEN", Message: err.Error()}
		}
		return nil, err
	}

	// The account is usable even if SMTP is down; the user can ask for the
	// mail again from the login screen.
	if err := uc.Mailer.SendVerification(user.Email, user.Name, user.VerifyToken); err != nil {
		log.Printf("failed to send verification mail to %s: %v", user.Email, err)
	}

	return user, nil
}

func (uc *AuthUseCase) Verify(ctx context.Context, token string) error {
	user, err := uc.Users.FindByVerifyToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &DomainError{Code: "INVALID_TOKEN", Message: "verification link is invalid"}
		}
		return err
	}
	if time.Now().After(user.VerifyTokenExpiry) {
		return &DomainError{Code: "TOKEN_EXPIRED", Message: "verification link has expired"}
	}

	_, err = uc.Users.Update(ctx, user.ID.Hex(), map[string]any{
		"verified":          true,
		"verifyToken":       "",
		"verifyTokenExpiry": time.Time{},
	})
	return err
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if errs := ValidateLoginInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
	}

	firstLogin := user.FirstLogin
	if firstLogin {
		if _, err := uc.Users.Update(ctx, user.ID.Hex(), map[string]any{"firstLogin": false}); err != nil {
			log.Printf("failed to clear firstLogin for %s: %v", user.Email, err)
		}
	}

	return &LoginOutput{
		Token:      uc.Sessions.Issue(user.ID.Hex()),
		User:       user,
		FirstLogin: firstLogin,
	}, nil
}

func (uc *AuthUseCase) Logout(token string) {
	uc.Sessions.Revoke(token)
}

// CurrentUser resolves a session token to its user.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	id, ok := uc.Sessions.UserID(token)
	if !ok {
		return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "session expired, please log in again"}
	}
	return uc.Users.FindByID(ctx, id)
}

func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &DomainError{Code: "USER_NOT_FOUND", Message: "no account with this email"}
		}
		return err
	}

	token := newToken()
	if _, err := uc.Users.Update(ctx, user.ID.Hex(), map[string]any{
		"resetToken":       token,
		"resetTokenExpiry": time.Now().Add(resetTokenTTL),
	}); err != nil {
		return err
	}

	return uc.Mailer.SendPasswordReset(user.Email, user.Name, token)
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "password must have at least 8 characters"}
	}

	user, err := uc.Users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &DomainError{Code: "INVALID_TOKEN", Message: "reset link is invalid"}
		}
		return err
	}
	if time.Now().After(user.ResetTokenExpiry) {
		return &DomainError{Code: "TOKEN_EXPIRED", Message: "reset link has expired"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = uc.Users.Update(ctx, user.ID.Hex(), map[string]any{
		"password":         string(hash),
		"resetToken":       "",
		"resetTokenExpiry": time.Time{},
	})
	return err
}
