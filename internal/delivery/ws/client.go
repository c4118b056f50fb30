package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gglink/gglink/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10
)

// Client is one authenticated realtime connection. Identity is immutable for
// the connection's life; currentRoom and closed are owned by the Presence
// coordinator and guarded by its mutex.
type Client struct {
	ID       string
	Identity domain.Identity

	presence *Presence
	conn     *websocket.Conn
	send     chan []byte

	currentRoom domain.RoomRef
	closed      bool
}

// NewClient creates a Client for an upgraded, authenticated connection.
func NewClient(presence *Presence, conn *websocket.Conn, identity domain.Identity) *Client {
	return &Client{
		ID:       uuid.New().String(),
		Identity: identity,
		presence: presence,
		conn:     conn,
		send:     make(chan []byte, domain.SendBufferSize),
	}
}

// ReadPump pumps inbound messages from the connection into the Presence
// coordinator. It runs in its own goroutine and triggers disconnect
// reconciliation exactly once, however the connection ends.
func (c *Client) ReadPump() {
	defer func() {
		c.presence.Disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(domain.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var incoming struct {
			Type    domain.EventType `json:"type"`
			Payload json.RawMessage  `json:"payload"`
		}
		if err := json.Unmarshal(message, &incoming); err != nil {
			continue
		}

		c.dispatch(incoming.Type, incoming.Payload)
	}
}

// dispatch routes one inbound envelope. Unknown types are ignored.
func (c *Client) dispatch(eventType domain.EventType, payload json.RawMessage) {
	switch eventType {
	case domain.EventJoinRoom:
		var req domain.RoomRequestPayload
		if err := json.Unmarshal(payload, &req); err != nil {
			return
		}
		room, err := domain.ParseRoomRef(req.Kind, req.ID)
		if err != nil {
			c.Send(roomErrorEvent(invalidRoomMessage(req.Kind)))
			return
		}
		c.presence.Join(c, room)

	case domain.EventLeaveRoom:
		var req domain.RoomRequestPayload
		if err := json.Unmarshal(payload, &req); err != nil {
			return
		}
		// No shape validation here: a ref that is not the current room is
		// ignored by the coordinator anyway.
		c.presence.Leave(c, domain.RoomRef{Kind: domain.RoomKind(req.Kind), ID: req.ID})

	case domain.EventChatSend:
		var req domain.ChatSendPayload
		if err := json.Unmarshal(payload, &req); err != nil {
			return
		}
		text := strings.TrimSpace(req.Text)
		if text == "" {
			// Boundary rule: empty chat never reaches the relay.
			return
		}
		c.presence.SubmitChat(c, domain.RoomRef{Kind: domain.RoomKind(req.Kind), ID: req.ID}, text)
	}
}

// WritePump pumps queued events to the connection and keeps it alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Drain whatever else is queued into the same frame
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Send queues an event for delivery. Non-blocking: if the buffer is full the
// event is dropped rather than stalling the sender's room.
func (c *Client) Send(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}
