package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/gglink/gglink/internal/domain"
)

// newEvent builds the outbound wire envelope as JSON bytes.
func newEvent(t domain.EventType, room domain.RoomRef, from domain.Identity, payload any) []byte {
	raw, _ := json.Marshal(payload)

	evt := domain.Event{
		ID:        uuid.New().String(),
		Type:      t,
		Room:      room.String(),
		FromID:    from.UserID,
		FromName:  from.Username,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}

	data, _ := json.Marshal(evt)
	return data
}

// memberEvent builds a member_joined or member_left broadcast.
func memberEvent(t domain.EventType, room domain.RoomRef, from domain.Identity, message string) []byte {
	return newEvent(t, room, from, domain.MemberEventPayload{
		UserID:   from.UserID,
		Username: from.Username,
		RoomID:   room.ID,
		Message:  message,
	})
}

// chatEvent builds a stamped chat broadcast. Identity always comes from the
// authenticated connection, never from the message payload.
func chatEvent(room domain.RoomRef, from domain.Identity, text string) []byte {
	return newEvent(domain.EventChatMessage, room, from, domain.ChatMessagePayload{
		UserID:   from.UserID,
		Username: from.Username,
		Text:     text,
	})
}

// roomErrorEvent builds a room_error sent back to the offending sender only.
func roomErrorEvent(message string) []byte {
	return newEvent(domain.EventRoomError, domain.RoomRef{}, domain.Identity{}, domain.RoomErrorPayload{
		Message: message,
	})
}

func roomNoun(kind domain.RoomKind) string {
	if kind == domain.RoomKindCommunity {
		return "community"
	}
	return "lobby"
}

func joinedMessage(room domain.RoomRef, username string) string {
	return username + " joined the " + roomNoun(room.Kind) + "."
}

func leftMessage(room domain.RoomRef, username string, disconnected bool) string {
	if disconnected {
		return username + " disconnected from the " + roomNoun(room.Kind) + "."
	}
	return username + " left the " + roomNoun(room.Kind) + "."
}

func invalidRoomMessage(kind string) string {
	if domain.RoomKind(kind).Valid() {
		return "Invalid " + kind + " id."
	}
	return "Invalid room."
}

func notInRoomMessage(room domain.RoomRef) string {
	return "You are not in this " + roomNoun(room.Kind) + " or its id is invalid."
}
