package service

import "errors"

// Domain errors surfaced to the HTTP layer, which maps them to status
// codes.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
	ErrNameRequired       = errors.New("name is required")
	ErrProfileLimit       = errors.New("profile limit reached")
	ErrOwnerImmutable     = errors.New("owner profile cannot be edited")
	ErrUnknownRoom        = errors.New("unknown room")
	ErrInvalidLevel       = errors.New("level must be 0, 1 or 2")
	ErrBusy               = errors.New("a recording is already being processed for this user")
)
