package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type AccountHandler struct {
	repo entity.AccountRepositoryInterface
}

func NewAccountHandler(repo entity.AccountRepositoryInterface) *AccountHandler {
	return &AccountHandler{repo: repo}
}

func (h *AccountHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var acc entity.Account
	if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	acc.Normalize()
	if err := acc.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &acc); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, acc)
}

func (h *AccountHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	acc, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["accountType"].(string); ok && !entity.IsValidAccountType(s) {
		writeError(w, http.StatusBadRequest, "accountType must be Current, Savings or Other")
		return
	}

	acc, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "account deleted")
}
