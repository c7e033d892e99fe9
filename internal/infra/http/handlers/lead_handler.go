package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type LeadHandler struct {
	repo entity.LeadRepositoryInterface
}

func NewLeadHandler(repo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{repo: repo}
}

func (h *LeadHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/bymonth", h.GetByMonth)
	r.Get("/byyear", h.GetByYear)
	r.Get("/bydate", h.GetByDate)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Patch("/status/{id}", h.UpdateStatus)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var lead entity.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead.Normalize()
	if err := lead.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &lead); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !entity.IsValidLeadStatus(status) {
		writeError(w, http.StatusBadRequest, "unknown lead status")
		return
	}

	leads, err := h.repo.FindAll(r.Context(), status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	lead, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["status"].(string); ok && !entity.IsValidLeadStatus(s) {
		writeError(w, http.StatusBadRequest, "unknown lead status")
		return
	}

	lead, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// UpdateStatus backs the Kanban board: a flat status write, no transition rule.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !entity.IsValidLeadStatus(input.Status) {
		writeError(w, http.StatusBadRequest, "status must be one of New, Discussion, Demo, Proposal, Decided")
		return
	}

	lead, err := h.repo.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "lead deleted")
}

func (h *LeadHandler) GetByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	leads, err := h.repo.FindByMonth(r.Context(), year, month)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be a number")
		return
	}
	leads, err := h.repo.FindByYear(r.Context(), year)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	leads, err := h.repo.FindByDate(r.Context(), day)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func yearMonthParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be a number")
		return 0, 0, false
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "month must be 1-12")
		return 0, 0, false
	}
	return year, month, true
}
