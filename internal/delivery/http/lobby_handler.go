package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gglink/gglink/internal/storage"
	"github.com/gglink/gglink/internal/usecase"
)

// HandleCreateLobby creates a lobby owned by the caller.
func (h *Handler) HandleCreateLobby(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Game        string `json:"game"`
		Mode        string `json:"mode"`
		Description string `json:"description"`
		MaxPlayers  int    `json:"max_players"`
		SkillLevel  string `json:"skill_level"`
		ImageURL    string `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	lobby, err := h.lobbies.Create(identityFrom(r).UserID, usecase.CreateLobbyInput{
		Name:        req.Name,
		Game:        req.Game,
		Mode:        req.Mode,
		Description: req.Description,
		MaxPlayers:  req.MaxPlayers,
		SkillLevel:  req.SkillLevel,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, lobby)
}

// HandleListLobbies lists lobbies, filterable by game (substring), skill
// level, and minimum capacity.
func (h *Handler) HandleListLobbies(w http.ResponseWriter, r *http.Request) {
	filter := storage.LobbyFilter{
		Game:       r.URL.Query().Get("game"),
		SkillLevel: r.URL.Query().Get("skillLevel"),
	}
	if slots := r.URL.Query().Get("minSlots"); slots != "" {
		if val, err := strconv.Atoi(slots); err == nil && val > 0 {
			filter.MinSlots = val
		}
	}

	lobbies, err := h.lobbies.List(filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lobbies)
}

// HandleJoinLobby adds the caller to a lobby.
func (h *Handler) HandleJoinLobby(w http.ResponseWriter, r *http.Request) {
	lobby, err := h.lobbies.Join(mux.Vars(r)["id"], identityFrom(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"msg":   "you joined the lobby!",
		"lobby": lobby,
	})
}

// HandleLeaveLobby removes the caller from a lobby. The lobby is deleted
// when its owner leaves it empty.
func (h *Handler) HandleLeaveLobby(w http.ResponseWriter, r *http.Request) {
	lobby, deleted, err := h.lobbies.Leave(mux.Vars(r)["id"], identityFrom(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if deleted {
		respondMessage(w, http.StatusOK, "you left the lobby. Lobby removed for lack of players.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"msg":   "you left the lobby!",
		"lobby": lobby,
	})
}

// HandleDeleteLobby deletes a lobby; owner only.
func (h *Handler) HandleDeleteLobby(w http.ResponseWriter, r *http.Request) {
	if err := h.lobbies.Delete(mux.Vars(r)["id"], identityFrom(r).UserID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "lobby deleted")
}
