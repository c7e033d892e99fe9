package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ComplaintHandler struct {
	repo entity.ComplaintRepositoryInterface
}

func NewComplaintHandler(repo entity.ComplaintRepositoryInterface) *ComplaintHandler {
	return &ComplaintHandler{repo: repo}
}

func (h *ComplaintHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c entity.Complaint
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	c.Normalize()
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &c); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ComplaintHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	c, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ComplaintHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["caseStatus"].(string); ok && !entity.IsValidCaseStatus(s) {
		writeError(w, http.StatusBadRequest, "caseStatus must be Pending, InProgress or Resolved")
		return
	}
	if p, ok := fields["priority"].(string); ok && !entity.IsValidPriority(p) {
		writeError(w, http.StatusBadRequest, "priority must be High, Medium or Low")
		return
	}

	c, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ComplaintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "complaint deleted")
}
