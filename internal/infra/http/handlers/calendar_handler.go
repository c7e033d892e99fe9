package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

type CalendarHandler struct {
	repo entity.CalendarEventRepositoryInterface
}

func NewCalendarHandler(repo entity.CalendarEventRepositoryInterface) *CalendarHandler {
	return &CalendarHandler{repo: repo}
}

func (h *CalendarHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Put("/update/{id}", h.Update)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var ev entity.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

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

func (h *CalendarHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ev, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	ev, err := h.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "calendar event deleted")
}
