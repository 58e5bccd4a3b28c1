package identity

import "errors"

var (
	// ErrNoSession indicates there is no active authenticated session.
	// Surfaced to the user as "please log in again"; never auto-retried.
	ErrNoSession = errors.New("no active session")
)
