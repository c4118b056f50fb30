package ws

import (
	"sync"

	"github.com/gglink/gglink/internal/domain"
)

// Presence owns each connection's room binding: which single room (if any)
// a connection currently occupies, the one-room-at-a-time rule, and the
// membership broadcasts that go with every transition. It is also the chat
// relay's authorization gate.
//
// A single coordinator mutex serializes every room mutation together with
// its fan-out, so all occupants of a room observe join/leave/chat events in
// the order they were processed. Fan-out itself is a non-blocking send per
// occupant; a slow connection drops events rather than stalling the room.
type Presence struct {
	mu       sync.Mutex
	registry *Registry
}

// NewPresence creates a Presence coordinator over the given registry.
func NewPresence(registry *Registry) *Presence {
	return &Presence{registry: registry}
}

// Join binds c to room, implicitly leaving whatever room c occupied before.
// The previous room's remaining occupants get a member_left broadcast, the
// new room's occupants (joiner included) a member_joined one. Re-joining the
// current room is a silent no-op.
func (p *Presence) Join(c *Client, room domain.RoomRef) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.closed || c.currentRoom == room {
		return
	}

	p.leaveCurrentLocked(c, false)

	p.registry.Join(room, c)
	c.currentRoom = room
	p.broadcastLocked(room, memberEvent(domain.EventMemberJoined, room, c.Identity, joinedMessage(room, c.Identity.Username)))
}

// Leave unbinds c from room. Leaving a room c does not currently occupy is
// a silent no-op, tolerating duplicate leave signals.
func (p *Presence) Leave(c *Client, room domain.RoomRef) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.currentRoom != room {
		return
	}
	p.leaveCurrentLocked(c, false)
}

// Disconnect reconciles an abruptly closed connection. It runs exactly once
// per connection; if a room was still occupied the same member_left
// broadcast a graceful leave would have produced is synthesized, flagged as
// a disconnect. Idempotent with an explicit prior leave.
func (p *Presence) Disconnect(c *Client) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	p.leaveCurrentLocked(c, true)
	p.registry.LeaveAll(c)
}

// SubmitChat relays a chat submission to room. Submissions for any room
// other than the one c currently occupies are dropped and answered with a
// room_error to the sender alone. On success the stamped event goes to every
// occupant of the room, sender included.
func (p *Presence) SubmitChat(c *Client, room domain.RoomRef, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c.currentRoom != room {
		c.Send(roomErrorEvent(notInRoomMessage(room)))
		return
	}

	p.broadcastLocked(room, chatEvent(room, c.Identity, text))
}

// CurrentRoom returns the room c currently occupies, or the zero ref.
func (p *Presence) CurrentRoom(c *Client) domain.RoomRef {
	p.mu.Lock()
	defer p.mu.Unlock()
	return c.currentRoom
}

// leaveCurrentLocked removes c from its current room (if any) and tells the
// remaining occupants. Caller must hold p.mu.
func (p *Presence) leaveCurrentLocked(c *Client, disconnected bool) {
	room := c.currentRoom
	if room.IsZero() {
		return
	}

	p.registry.Leave(room, c)
	c.currentRoom = domain.RoomRef{}
	p.broadcastLocked(room, memberEvent(domain.EventMemberLeft, room, c.Identity, leftMessage(room, c.Identity.Username, disconnected)))
}

// broadcastLocked fans data out to every occupant of room. Caller must hold
// p.mu. Delivery failure to one occupant never aborts delivery to the rest.
func (p *Presence) broadcastLocked(room domain.RoomRef, data []byte) {
	for _, occupant := range p.registry.Occupants(room) {
		occupant.Send(data)
	}
}
