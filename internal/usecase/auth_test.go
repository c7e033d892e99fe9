package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type userRepositoryMock struct{ mock.Mock }

func (m *userRepositoryMock) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepositoryMock) FindByVerifyToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepositoryMock) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type mailerMock struct{ mock.Mock }

func (m *mailerMock) SendVerification(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *mailerMock) SendPasswordReset(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func newAuthUseCase(users *userRepositoryMock, mailer *mailerMock) *AuthUseCase {
	return NewAuthUseCase(users, mailer, NewSessionStore(time.Hour))
}

func TestRegister(t *testing.T) {
	users := &userRepositoryMock{}
	mailer := &mailerMock{}
	uc := newAuthUseCase(users, mailer)

	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*entity.User)
			u.ID = bson.NewObjectID()
		}).Return(nil)
	mailer.On("SendVerification", "jo@acme.com", "Jo Doe", mock.AnythingOfType("string")).Return(nil)

	user, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jo Doe",
		Email:    "jo@acme.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.NotEqual(t, "secret123", user.Password) // stored hashed
	assert.NotEmpty(t, user.VerifyToken)
	assert.True(t, user.FirstLogin)
	mailer.AssertExpectations(t)
}

func TestRegisterInvalidInput(t *testing.T) {
	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jo",
		Email:    "not-an-email",
		Password: "short",
	})

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &userRepositoryMock{}
	mailer := &mailerMock{}
	uc := newAuthUseCase(users, mailer)

	users.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jo Doe",
		Email:    "jo@acme.com",
		Password: "secret123",
	})

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "EMAIL_TAKEN", domainErr.Code)
	mailer.AssertNotCalled(t, "SendVerification", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	users := &userRepositoryMock{}
	mailer := &mailerMock{}
	uc := newAuthUseCase(users, mailer)

	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendVerification", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp timeout"))

	user, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jo Doe",
		Email:    "jo@acme.com",
		Password: "secret123",
	})
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &entity.User{
		ID:         bson.NewObjectID(),
		Name:       "Jo Doe",
		Email:      "jo@acme.com",
		Password:   string(hash),
		FirstLogin: true,
	}

	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})
	users.On("FindByEmail", mock.Anything, "jo@acme.com").Return(stored, nil)
	users.On("Update", mock.Anything, stored.ID.Hex(), map[string]any{"firstLogin": false}).
		Return(stored, nil)

	out, err := uc.Login(context.Background(), LoginInput{Email: "jo@acme.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.FirstLogin)

	// Issued token resolves back to the user.
	users.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)
	current, err := uc.CurrentUser(context.Background(), out.Token)
	assert.NoError(t, err)
	assert.Equal(t, stored.Email, current.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &entity.User{ID: bson.NewObjectID(), Email: "jo@acme.com", Password: string(hash)}

	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})
	users.On("FindByEmail", mock.Anything, "jo@acme.com").Return(stored, nil)

	_, err := uc.Login(context.Background(), LoginInput{Email: "jo@acme.com", Password: "wrong"})

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})
	users.On("FindByEmail", mock.Anything, "ghost@acme.com").Return(nil, entity.ErrNotFound)

	_, err := uc.Login(context.Background(), LoginInput{Email: "ghost@acme.com", Password: "whatever"})

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	uc := newAuthUseCase(&userRepositoryMock{}, &mailerMock{})

	token := uc.Sessions.Issue("user-1")
	uc.Logout(token)

	_, err := uc.CurrentUser(context.Background(), token)
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestVerifyExpiredToken(t *testing.T) {
	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})

	users.On("FindByVerifyToken", mock.Anything, "tok").Return(&entity.User{
		ID:                bson.NewObjectID(),
		VerifyToken:       "tok",
		VerifyTokenExpiry: time.Now().Add(-time.Minute),
	}, nil)

	err := uc.Verify(context.Background(), "tok")

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_EXPIRED", domainErr.Code)
}

func TestResetPassword(t *testing.T) {
	stored := &entity.User{
		ID:               bson.NewObjectID(),
		Email:            "jo@acme.com",
		ResetToken:       "tok",
		ResetTokenExpiry: time.Now().Add(time.Hour),
	}

	users := &userRepositoryMock{}
	uc := newAuthUseCase(users, &mailerMock{})
	users.On("FindByResetToken", mock.Anything, "tok").Return(stored, nil)
	users.On("Update", mock.Anything, stored.ID.Hex(), mock.Anything).
		Run(func(args mock.Arguments) {
			fields := args.Get(2).(map[string]any)
			hash := fields["password"].(string)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret1")))
			assert.Equal(t, "", fields["resetToken"])
		}).Return(stored, nil)

	assert.NoError(t, uc.ResetPassword(context.Background(), "tok", "newsecret1"))
	users.AssertExpectations(t)
}

func TestSessionExpiry(t *testing.T) {
	store := NewSessionStore(-time.Second) // already expired on issue
	token := store.Issue("user-1")

	_, ok := store.UserID(token)
	assert.False(t, ok)
}
