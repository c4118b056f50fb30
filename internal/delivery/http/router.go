package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gglink/gglink/internal/middleware"
)

// NewRouter assembles the REST and realtime routes with per-IP rate
// limiting; everything except register/login requires a valid token.
func NewRouter(h *Handler, apiLimiter, wsLimiter *middleware.IPRateLimiter) *mux.Router {
	r := mux.NewRouter()

	limited := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RateLimitFunc(apiLimiter, next)
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return limited(RequireAuth(h.auth, next))
	}

	// Auth
	r.HandleFunc("/api/auth/register", limited(h.HandleRegister)).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", limited(h.HandleLogin)).Methods(http.MethodPost)

	// Users
	r.HandleFunc("/api/users/me", authed(h.HandleMyProfile)).Methods(http.MethodGet)
	r.HandleFunc("/api/users/me", authed(h.HandleUpdateProfile)).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{id}", authed(h.HandleUserProfile)).Methods(http.MethodGet)

	// Lobbies
	r.HandleFunc("/api/lobbies", authed(h.HandleCreateLobby)).Methods(http.MethodPost)
	r.HandleFunc("/api/lobbies", authed(h.HandleListLobbies)).Methods(http.MethodGet)
	r.HandleFunc("/api/lobbies/{id}/join", authed(h.HandleJoinLobby)).Methods(http.MethodPut)
	r.HandleFunc("/api/lobbies/{id}/leave", authed(h.HandleLeaveLobby)).Methods(http.MethodPut)
	r.HandleFunc("/api/lobbies/{id}", authed(h.HandleDeleteLobby)).Methods(http.MethodDelete)

	// Communities
	r.HandleFunc("/api/communities", authed(h.HandleListCommunities)).Methods(http.MethodGet)
	r.HandleFunc("/api/communities/{id}", authed(h.HandleGetCommunity)).Methods(http.MethodGet)
	r.HandleFunc("/api/communities/{id}/join", authed(h.HandleJoinCommunity)).Methods(http.MethodPut)
	r.HandleFunc("/api/communities/{id}/leave", authed(h.HandleLeaveCommunity)).Methods(http.MethodPut)

	// Feedback
	r.HandleFunc("/api/feedback/rate", authed(h.HandleSubmitRating)).Methods(http.MethodPost)
	r.HandleFunc("/api/feedback/report", authed(h.HandleSubmitReport)).Methods(http.MethodPost)

	// Realtime handshake; auth happens inside, before the upgrade
	r.HandleFunc("/ws", middleware.RateLimitFunc(wsLimiter, h.HandleWebSocket)).Methods(http.MethodGet)

	return r
}
