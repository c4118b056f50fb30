package domain

import (
	"errors"

	"github.com/google/uuid"
)

// RoomKind distinguishes the two kinds of chat rooms.
type RoomKind string

const (
	RoomKindLobby     RoomKind = "lobby"
	RoomKindCommunity RoomKind = "community"
)

// Valid reports whether k names a known room kind.
func (k RoomKind) Valid() bool {
	return k == RoomKindLobby || k == RoomKindCommunity
}

// ErrBadRoomRef is returned when a room reference has an unknown kind or a
// malformed identifier.
var ErrBadRoomRef = errors.New("invalid room reference")

// RoomRef is a tagged room identifier. The zero value means "no room".
// The id is the durable store's lobby or community id; beyond its shape the
// realtime layer treats it as opaque.
type RoomRef struct {
	Kind RoomKind `json:"kind"`
	ID   string   `json:"id"`
}

// ParseRoomRef builds a RoomRef from wire input, rejecting unknown kinds and
// syntactically invalid identifiers. Existence of the underlying lobby or
// community is not checked here.
func ParseRoomRef(kind, id string) (RoomRef, error) {
	k := RoomKind(kind)
	if !k.Valid() {
		return RoomRef{}, ErrBadRoomRef
	}
	if _, err := uuid.Parse(id); err != nil {
		return RoomRef{}, ErrBadRoomRef
	}
	return RoomRef{Kind: k, ID: id}, nil
}

// IsZero reports whether r names no room.
func (r RoomRef) IsZero() bool {
	return r == RoomRef{}
}

// String renders the ref as "kind:id".
func (r RoomRef) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.Kind) + ":" + r.ID
}
