package http

import (
	"net/http"

	"github.com/gglink/gglink/internal/delivery/ws"
)

// HandleWebSocket authenticates and upgrades a realtime connection.
//
// The credential comes with the handshake (token query parameter or auth
// header) and is resolved exactly once; a connection that fails here is
// refused before any room operation is possible and no state is created
// for it. Identity is not re-verified per message.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = bearerToken(r)
	}
	if token == "" {
		respondMessage(w, http.StatusUnauthorized, "authentication required for WebSocket")
		return
	}

	identity, err := h.auth.ResolveIdentity(token)
	if err != nil {
		respondMessage(w, http.StatusUnauthorized, "invalid authentication token")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := ws.NewClient(h.presence, conn, identity)
	go client.WritePump()
	go client.ReadPump()
}
