package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type InvoiceHandler struct {
	repo entity.InvoiceRepositoryInterface
}

func NewInvoiceHandler(repo entity.InvoiceRepositoryInterface) *InvoiceHandler {
	return &InvoiceHandler{repo: repo}
}

func (h *InvoiceHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Patch("/status/{id}", h.UpdateStatus)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var inv entity.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	inv.Normalize()
	if err := inv.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &inv); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !entity.IsValidInvoiceStatus(status) {
		writeError(w, http.StatusBadRequest, "status must be Paid or Unpaid")
		return
	}

	invoices, err := h.repo.FindAll(r.Context(), status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	inv, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["status"].(string); ok && !entity.IsValidInvoiceStatus(s) {
		writeError(w, http.StatusBadRequest, "status must be Paid or Unpaid")
		return
	}

	inv, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// UpdateStatus flips an invoice between Paid and Unpaid.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !entity.IsValidInvoiceStatus(input.Status) {
		writeError(w, http.StatusBadRequest, "status must be Paid or Unpaid")
		return
	}

	inv, err := h.repo.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "invoice deleted")
}
