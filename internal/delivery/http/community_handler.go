package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// HandleListCommunities lists all communities.
func (h *Handler) HandleListCommunities(w http.ResponseWriter, r *http.Request) {
	communities, err := h.communities.List()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, communities)
}

// HandleGetCommunity returns one community with its members.
func (h *Handler) HandleGetCommunity(w http.ResponseWriter, r *http.Request) {
	community, err := h.communities.Get(mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, community)
}

// HandleJoinCommunity adds the caller to a community.
func (h *Handler) HandleJoinCommunity(w http.ResponseWriter, r *http.Request) {
	community, err := h.communities.Join(mux.Vars(r)["id"], identityFrom(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"msg":       "you joined the community!",
		"community": community,
	})
}

// HandleLeaveCommunity removes the caller from a community.
func (h *Handler) HandleLeaveCommunity(w http.ResponseWriter, r *http.Request) {
	community, err := h.communities.Leave(mux.Vars(r)["id"], identityFrom(r).UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"msg":       "you left the community!",
		"community": community,
	})
}
