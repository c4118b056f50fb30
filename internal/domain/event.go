package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of a realtime event.
type EventType string

const (
	// Client -> server.
	EventJoinRoom  EventType = "join_room"
	EventLeaveRoom EventType = "leave_room"
	EventChatSend  EventType = "chat"

	// Server -> room occupants.
	EventMemberJoined EventType = "member_joined"
	EventMemberLeft   EventType = "member_left"
	EventChatMessage  EventType = "chat_message"

	// Server -> the offending sender only.
	EventRoomError EventType = "room_error"
)

// Event is the outbound wire envelope. Sender identity always comes from the
// authenticated connection and the timestamp is server-assigned.
type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Room      string          `json:"room,omitempty"`
	FromID    string          `json:"from_id,omitempty"`
	FromName  string          `json:"from_name,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// RoomRequestPayload is the inbound payload for join_room and leave_room.
type RoomRequestPayload struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// ChatSendPayload is the inbound payload for chat submissions.
type ChatSendPayload struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MemberEventPayload is broadcast to a room when an occupant joins or leaves.
type MemberEventPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	RoomID   string `json:"room_id"`
	Message  string `json:"message"`
}

// ChatMessagePayload is the stamped chat event fanned out to a room,
// sender included.
type ChatMessagePayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// RoomErrorPayload carries a human-readable reason back to the sender.
type RoomErrorPayload struct {
	Message string `json:"message"`
}
