package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/usecase"
)

const sessionCookie = "everest_session"

type OwnerHandler struct {
	uc *usecase.AuthUseCase
}

func NewOwnerHandler(uc *usecase.AuthUseCase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

func (h *OwnerHandler) Register(r chi.Router) {
	r.Post("/register", h.SignUp)
	r.Get("/verify/{token}", h.Verify)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	r.Get("/me", h.Me)
}

func (h *OwnerHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := h.uc.Register(r.Context(), input)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *OwnerHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Verify(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "email verified")
}

func (h *OwnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := h.uc.Login(r.Context(), input)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 3600,
	})
	writeJSON(w, http.StatusOK, out)
}

func (h *OwnerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		h.uc.Logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *OwnerHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.uc.ForgotPassword(r.Context(), input.Email); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "reset mail sent")
}

func (h *OwnerHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.uc.ResetPassword(r.Context(), input.Token, input.Password); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "password updated")
}

func (h *OwnerHandler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	user, err := h.uc.CurrentUser(r.Context(), c.Value)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
