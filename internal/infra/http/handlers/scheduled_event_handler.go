package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type ScheduledEventHandler struct {
	repo entity.ScheduledEventRepositoryInterface
}

func NewScheduledEventHandler(repo entity.ScheduledEventRepositoryInterface) *ScheduledEventHandler {
	return &ScheduledEventHandler{repo: repo}
}

func (h *ScheduledEventHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *ScheduledEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var ev entity.ScheduledEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ev.Normalize()
	if err := ev.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), &ev); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

func (h *ScheduledEventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *ScheduledEventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ev, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *ScheduledEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}
	if s, ok := fields["eventType"].(string); ok && !entity.IsValidEventType(s) {
		writeError(w, http.StatusBadRequest, "eventType must be Meeting, Call, Demo, Follow-up or Other")
		return
	}
	if s, ok := fields["recurrence"].(string); ok && !entity.IsValidRecurrence(s) {
		writeError(w, http.StatusBadRequest, "recurrence must be Once, Daily, Weekly or Monthly")
		return
	}
	if p, ok := fields["priority"].(string); ok && !entity.IsValidPriority(p) {
		writeError(w, http.StatusBadRequest, "priority must be High, Medium or Low")
		return
	}

	ev, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *ScheduledEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "scheduled event deleted")
}
