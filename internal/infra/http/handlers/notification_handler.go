package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

// NotificationBroadcaster pushes a persisted notification to every connected
// realtime client. Implemented by ws.Hub.
type NotificationBroadcaster interface {
	BroadcastNotification(n *entity.Notification)
}

type NotificationHandler struct {
	repo        entity.NotificationRepositoryInterface
	broadcaster NotificationBroadcaster
}

func NewNotificationHandler(repo entity.NotificationRepositoryInterface, broadcaster NotificationBroadcaster) *NotificationHandler {
	return &NotificationHandler{repo: repo, broadcaster: broadcaster}
}

func (h *NotificationHandler) Register(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/getall", h.GetAll)
	r.Patch("/read/{id}", h.MarkRead)
	r.Patch("/readall", h.MarkAllRead)
	r.Delete("/delete/{id}", h.Delete)
}

// Create persists the payload verbatim and broadcasts it over the realtime
// channel, so REST-created notifications reach connected clients too.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload bson.M
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	n := &entity.Notification{Data: payload}
	if err := n.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), n); err != nil {
		writeRepoError(w, err)
		return
	}

	h.broadcaster.BroadcastNotification(n)
	writeJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.repo.FindAll(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.repo.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.MarkAllRead(r.Context()); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "all notifications marked read")
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "notification deleted")
}
