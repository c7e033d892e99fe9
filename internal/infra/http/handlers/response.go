package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
	"github.com/purva-galani/Everest-main-live-sub001/internal/usecase"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: false, Message: message})
}

// writeRepoError translates repository and usecase errors into a status.
// Every handler reports independently; there is no central error layer.
func writeRepoError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrEmailAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &domainErr):
		status := http.StatusBadRequest
		switch domainErr.Code {
		case "INVALID_CREDENTIALS":
			status = http.StatusUnauthorized
		case "USER_NOT_FOUND":
			status = http.StatusNotFound
		case "EMAIL_TAKEN":
			status = http.StatusConflict
		}
		writeError(w, status, domainErr.Message)
	default:
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
