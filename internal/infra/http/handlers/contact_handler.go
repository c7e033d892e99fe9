package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ContactHandler struct {
	repo entity.ContactRepositoryInterface
}

func NewContactHandler(repo entity.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{repo: repo}
}

func (h *ContactHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contact entity.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := contact.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &contact); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	contact, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	contact, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "contact deleted")
}
