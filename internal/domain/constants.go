package domain

import "time"

// ==== WebSocket Constants ====

// MaxMessageSize is the maximum allowed WebSocket message size in bytes.
const MaxMessageSize = 4096

// SendBufferSize is the per-connection outbound queue length.
const SendBufferSize = 256

// ==== Auth Constants ====

// DefaultTokenTTL is the default bearer token time-to-live.
const DefaultTokenTTL = time.Hour

// BcryptCost is the cost used for password hashes.
const BcryptCost = 10

// ==== Lobby Constants ====

const (
	// MinLobbyPlayers is the smallest allowed lobby capacity.
	MinLobbyPlayers = 2

	// MaxLobbyPlayers is the largest allowed lobby capacity.
	MaxLobbyPlayers = 10
)

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitAPI is the default rate limit for API endpoints (requests/sec).
	DefaultRateLimitAPI = 10

	// DefaultRateLimitWS is the default rate limit for WebSocket handshakes (req/sec).
	DefaultRateLimitWS = 5
)
