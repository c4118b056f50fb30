package domain

// Identity is the authenticated account behind a realtime connection.
// It is resolved once at handshake time and treated as read-only by every
// other component for the life of the connection.
type Identity struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
