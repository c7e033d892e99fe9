package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type DealHandler struct {
	repo entity.DealRepositoryInterface
}

func NewDealHandler(repo entity.DealRepositoryInterface) *DealHandler {
	return &DealHandler{repo: repo}
}

func (h *DealHandler) Register(r chi.Router) {
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

func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var deal entity.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	deal.Normalize()
	if err := deal.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &deal); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

func (h *DealHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !entity.IsValidDealStatus(status) {
		writeError(w, http.StatusBadRequest, "unknown deal status")
		return
	}

	deals, err := h.repo.FindAll(r.Context(), status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

func (h *DealHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	deal, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["status"].(string); ok && !entity.IsValidDealStatus(s) {
		writeError(w, http.StatusBadRequest, "unknown deal status")
		return
	}

	deal, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !entity.IsValidDealStatus(input.Status) {
		writeError(w, http.StatusBadRequest, "status must be one of New, Discussion, Demo, Proposal, Decided")
		return
	}

	deal, err := h.repo.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (h *DealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "deal deleted")
}

func (h *DealHandler) GetByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonthParams(w, r)
	if !ok {
		return
	}
	deals, err := h.repo.FindByMonth(r.Context(), year, month)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

func (h *DealHandler) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be a number")
		return
	}
	deals, err := h.repo.FindByYear(r.Context(), year)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}

func (h *DealHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	deals, err := h.repo.FindByDate(r.Context(), day)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deals)
}
