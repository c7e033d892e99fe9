package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ClientCounter reports connected realtime clients. Implemented by ws.Hub.
type ClientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	Client    *mongo.Client
	Hub       ClientCounter
	StartTime time.Time
}

type HealthResponse struct {
	Status          string            `json:"status"`
	Version         string            `json:"version"`
	Uptime          string            `json:"uptime"`
	RealtimeClients int               `json:"realtimeClients"`
	Dependencies    map[string]string `json:"dependencies"`
}

func NewHealthHandler(client *mongo.Client, hub ClientCounter) *HealthHandler {
	return &HealthHandler{
		Client:    client,
		Hub:       hub,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			deps["mongodb"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["mongodb"] = "healthy"
		}
		cancel()
	} else {
		deps["mongodb"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:          status,
		Version:         "1.0.0",
		Uptime:          time.Since(h.StartTime).Round(time.Second).String(),
		RealtimeClients: h.Hub.ClientCount(),
		Dependencies:    deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(response)
}
