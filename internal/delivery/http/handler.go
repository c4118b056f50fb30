package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/gglink/gglink/internal/config"
	"github.com/gglink/gglink/internal/delivery/ws"
	"github.com/gglink/gglink/internal/usecase"
)

// Handler holds the REST and realtime entry points and their collaborators.
type Handler struct {
	cfg         *config.Config
	auth        *usecase.AuthService
	lobbies     *usecase.LobbyService
	communities *usecase.CommunityService
	feedback    *usecase.FeedbackService
	presence    *ws.Presence
	upgrader    websocket.Upgrader
}

// NewHandler creates a Handler wired to the given services and presence
// coordinator.
func NewHandler(
	cfg *config.Config,
	auth *usecase.AuthService,
	lobbies *usecase.LobbyService,
	communities *usecase.CommunityService,
	feedback *usecase.FeedbackService,
	presence *ws.Presence,
) *Handler {
	h := &Handler{
		cfg:         cfg,
		auth:        auth,
		lobbies:     lobbies,
		communities: communities,
		feedback:    feedback,
		presence:    presence,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return h.isOriginAllowed(r.Header.Get("Origin"))
		},
	}
	return h
}

// isOriginAllowed checks the origin against the configured allow-list.
// An empty origin is allowed (same-origin and non-browser clients).
func (h *Handler) isOriginAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}
