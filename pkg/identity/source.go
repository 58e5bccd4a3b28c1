package identity

import (
	"context"
	"sync"
)

// SessionSource supplies the current authenticated session, if any.
// Implementations wrap the identity provider's client; both accessors report
// false when no session is active so callers can fail with ErrNoSession
// before making any network call.
type SessionSource interface {
	// SessionToken returns the bearer token for the active session.
	SessionToken() (string, bool)

	// Subject returns the stable identifier of the signed-in user.
	// Immutable for the session lifetime.
	Subject() (string, bool)

	// RevokeSession terminates the active session with the identity provider.
	RevokeSession(ctx context.Context) error
}

// StaticSource is an in-memory SessionSource holding a fixed token and
// subject. Useful for tests and for wiring flows where the session was
// already resolved. The zero value behaves as "not logged in".
type StaticSource struct {
	mu      sync.RWMutex
	token   string
	subject string
}

// NewStaticSource returns a StaticSource for the given subject and token.
func NewStaticSource(subject, token string) *StaticSource {
	return &StaticSource{token: token, subject: subject}
}

func (s *StaticSource) SessionToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *StaticSource) Subject() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subject, s.subject != ""
}

// RevokeSession clears the held token and subject.
func (s *StaticSource) RevokeSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.subject = ""
	return nil
}
