package ws

import (
	"sync"

	"github.com/gglink/gglink/internal/domain"
)

// Registry maps room refs to the set of connections currently occupying
// them. Occupancy sets are created lazily on first join and discarded when
// the last occupant leaves; they hold no durable state. All mutation of room
// occupancy goes through the Registry, never around it.
type Registry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomRef]map[*Client]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[domain.RoomRef]map[*Client]struct{}),
	}
}

// Join adds c to room's occupancy set. Joining a room the connection is
// already in is a no-op; the return value reports whether c was newly added.
func (r *Registry) Join(room domain.RoomRef, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	occupants, ok := r.rooms[room]
	if !ok {
		occupants = make(map[*Client]struct{})
		r.rooms[room] = occupants
	}
	if _, exists := occupants[c]; exists {
		return false
	}
	occupants[c] = struct{}{}
	return true
}

// Leave removes c from room's occupancy set and reports whether c was
// present. The set is dropped once empty.
func (r *Registry) Leave(room domain.RoomRef, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	occupants, ok := r.rooms[room]
	if !ok {
		return false
	}
	if _, exists := occupants[c]; !exists {
		return false
	}
	delete(occupants, c)
	if len(occupants) == 0 {
		delete(r.rooms, room)
	}
	return true
}

// LeaveAll removes c from every occupancy set it is in and returns the rooms
// it was removed from. Safe to call for a connection occupying nothing.
func (r *Registry) LeaveAll(c *Client) []domain.RoomRef {
	r.mu.Lock()
	defer r.mu.Unlock()

	var left []domain.RoomRef
	for room, occupants := range r.rooms {
		if _, exists := occupants[c]; !exists {
			continue
		}
		delete(occupants, c)
		if len(occupants) == 0 {
			delete(r.rooms, room)
		}
		left = append(left, room)
	}
	return left
}

// Occupants returns the connections currently in room.
func (r *Registry) Occupants(room domain.RoomRef) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	occupants := r.rooms[room]
	result := make([]*Client, 0, len(occupants))
	for c := range occupants {
		result = append(result, c)
	}
	return result
}

// OccupantCount returns the number of connections currently in room.
func (r *Registry) OccupantCount(room domain.RoomRef) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}
