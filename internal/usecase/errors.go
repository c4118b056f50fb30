package usecase

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrUsernameTaken is returned when the requested username is in use.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrLobbyFull is returned when joining a lobby at capacity.
	ErrLobbyFull = errors.New("lobby is full")

	// ErrAlreadyJoined is returned when joining a lobby or community twice.
	ErrAlreadyJoined = errors.New("already joined")

	// ErrNotMember is returned when leaving a lobby or community the user
	// is not part of.
	ErrNotMember = errors.New("not a member")

	// ErrNotOwner is returned when a non-owner tries an owner-only operation.
	ErrNotOwner = errors.New("only the owner may do this")

	// ErrNotInLobbyTogether is returned when feedback targets a player the
	// submitter never shared the lobby with.
	ErrNotInLobbyTogether = errors.New("both users must have been in the lobby")

	// ErrDuplicateFeedback is returned when an identical rating or report
	// already exists.
	ErrDuplicateFeedback = errors.New("feedback already submitted")
)
