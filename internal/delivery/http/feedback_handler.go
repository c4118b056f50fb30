package http

import (
	"encoding/json"
	"net/http"
)

// HandleSubmitRating records a star rating for a player from a shared lobby.
func (h *Handler) HandleSubmitRating(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RatedUser string `json:"rated_user"`
		LobbyID   string `json:"lobby_id"`
		Stars     int    `json:"stars"`
		Comment   string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.feedback.SubmitRating(identityFrom(r).UserID, req.RatedUser, req.LobbyID, req.Stars, req.Comment)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusCreated, "rating saved successfully!")
}

// HandleSubmitReport records a misconduct report tied to a shared lobby.
func (h *Handler) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReportedUser string `json:"reported_user"`
		LobbyID      string `json:"lobby_id"`
		Reason       string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	err := h.feedback.SubmitReport(identityFrom(r).UserID, req.ReportedUser, req.LobbyID, req.Reason)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusCreated, "report submitted! Our team will review it.")
}
