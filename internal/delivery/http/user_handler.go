package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gglink/gglink/internal/usecase"
)

// HandleMyProfile returns the caller's profile with received ratings.
func (h *Handler) HandleMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.feedback.Profile(identityFrom(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleUserProfile returns another user's profile by id.
func (h *Handler) HandleUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	if _, err := uuid.Parse(userID); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	profile, err := h.feedback.Profile(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile updates the caller's editable profile fields.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username          *string `json:"username"`
		FavoriteGame      *string `json:"favorite_game"`
		ProfilePictureURL *string `json:"profile_picture_url"`
		Bio               *string `json:"bio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.feedback.UpdateProfile(identityFrom(r).UserID, usecase.UpdateProfileInput{
		Username:          req.Username,
		FavoriteGame:      req.FavoriteGame,
		ProfilePictureURL: req.ProfilePictureURL,
		Bio:               req.Bio,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}
