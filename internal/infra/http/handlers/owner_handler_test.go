package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
	"github.com/purva-galani/Everest-main-live-sub001/internal/usecase"
)

type userRepositoryMock struct{ mock.Mock }

func (m *userRepositoryMock) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
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
	return m.Called(to, name, token).Error(0)
}

func (m *mailerMock) SendPasswordReset(to, name, token string) error {
	return m.Called(to, name, token).Error(0)
}

func ownerRouter(users entity.UserRepositoryInterface, mailer usecase.Mailer) http.Handler {
	uc := usecase.NewAuthUseCase(users, mailer, usecase.NewSessionStore(time.Hour))
	r := chi.NewRouter()
	r.Route("/api/v1/owner", NewOwnerHandler(uc).Register)
	return r
}

func TestOwnerLoginSetsSessionCookie(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	stored := &entity.User{
		ID:       bson.NewObjectID(),
		Name:     "Jo Doe",
		Email:    "jo@acme.com",
		Password: string(hash),
	}

	users := &userRepositoryMock{}
	users.On("FindByEmail", mock.Anything, "jo@acme.com").Return(stored, nil)
	users.On("FindByID", mock.Anything, stored.ID.Hex()).Return(stored, nil)

	router := ownerRouter(users, &mailerMock{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/owner/login",
		map[string]any{"email": "jo@acme.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "everest_session" {
			cookie = c
		}
	}
	if assert.NotNil(t, cookie) {
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	}

	// The cookie authenticates /me; the password never appears in JSON.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/owner/me", nil)
	req.AddCookie(cookie)
	rec2 := doRawRequest(router, req)
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "jo@acme.com")
	assert.NotContains(t, rec2.Body.String(), string(hash))
}

func TestOwnerLoginBadPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users := &userRepositoryMock{}
	users.On("FindByEmail", mock.Anything, "jo@acme.com").
		Return(&entity.User{ID: bson.NewObjectID(), Email: "jo@acme.com", Password: string(hash)}, nil)

	rec := doRequest(t, ownerRouter(users, &mailerMock{}), http.MethodPost,
		"/api/v1/owner/login", map[string]any{"email": "jo@acme.com", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestOwnerSignUp(t *testing.T) {
	users := &userRepositoryMock{}
	mailer := &mailerMock{}
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = bson.NewObjectID()
		}).Return(nil)
	mailer.On("SendVerification", "jo@acme.com", "Jo Doe", mock.AnythingOfType("string")).Return(nil)

	rec := doRequest(t, ownerRouter(users, mailer), http.MethodPost, "/api/v1/owner/register",
		map[string]any{"name": "Jo Doe", "email": "jo@acme.com", "password": "secret123"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	mailer.AssertExpectations(t)
}

func TestOwnerSignUpDuplicateEmail(t *testing.T) {
	users := &userRepositoryMock{}
	users.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	rec := doRequest(t, ownerRouter(users, &mailerMock{}), http.MethodPost, "/api/v1/owner/register",
		map[string]any{"name": "Jo Doe", "email": "jo@acme.com", "password": "secret123"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOwnerForgotPasswordUnknownEmail(t *testing.T) {
	users := &userRepositoryMock{}
	users.On("FindByEmail", mock.Anything, "ghost@acme.com").Return(nil, entity.ErrNotFound)

	rec := doRequest(t, ownerRouter(users, &mailerMock{}), http.MethodPost,
		"/api/v1/owner/forgot-password", map[string]any{"email": "ghost@acme.com"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOwnerMeWithoutCookie(t *testing.T) {
	rec := doRequest(t, ownerRouter(&userRepositoryMock{}, &mailerMock{}), http.MethodGet,
		"/api/v1/owner/me", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
