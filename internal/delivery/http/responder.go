package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gglink/gglink/internal/usecase"
)

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondMessage writes a {"msg": ...} body, the shape clients render as a
// notice.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"msg": msg})
}

// respondServiceError maps service-layer sentinel errors to HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrNotOwner):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrLobbyFull),
		errors.Is(err, usecase.ErrAlreadyJoined),
		errors.Is(err, usecase.ErrNotMember),
		errors.Is(err, usecase.ErrNotInLobbyTogether),
		errors.Is(err, usecase.ErrDuplicateFeedback):
		respondMessage(w, http.StatusBadRequest, err.Error())
	default:
		respondMessage(w, http.StatusInternalServerError, "server error")
	}
}
