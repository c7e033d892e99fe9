// Package ws is the realtime notification bridge: clients submit a
// notification over a websocket, the server persists it, acknowledges the
// sender and rebroadcasts the payload to every connected client.
package ws

import (
	"encoding/json"
	"sync/atomic"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/http/middleware"
)

const (
	EventCreate = "notification:create"
	EventSaved  = "notification:saved"
	EventNew    = "notification:new"
)

type Envelope struct {
	Event   string          `json:"event"`
	Data    json.RawMessage `json:"data,omitempty"`
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
}

type Hub struct {
	notifications entity.NotificationRepositoryInterface

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	clients map[*Client]bool
	size    atomic.Int64
}

func NewHub(notifications entity.NotificationRepositoryInterface) *Hub {
	return &Hub{
		notifications: notifications,
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		broadcast:     make(chan []byte, 64),
		clients:       make(map[*Client]bool),
	}
}

// Run owns the client set; all membership changes and fan-out go through its
// channels, so no lock is needed. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.size.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.size.Store(int64(len(h.clients)))
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// client stopped draining its buffer; drop it
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.size.Store(int64(len(h.clients)))
		}
	}
}

// BroadcastNotification fans a persisted notification out to every connected
// client, the submitter included.
func (h *Hub) BroadcastNotification(n *entity.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	msg, err := json.Marshal(Envelope{Event: EventNew, Data: data})
	if err != nil {
		return
	}
	h.broadcast <- msg
	middleware.RecordNotificationBroadcast()
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	return int(h.size.Load())
}
