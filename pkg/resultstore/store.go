package resultstore

import (
	"context"
	"errors"
)

// ErrNotFound indicates no entry exists for the requested generation ID.
var ErrNotFound = errors.New("generation result not found")

// keyPrefix namespaces stash entries by the kind of stored payload.
const keyPrefix = "generation-"

// Store maps a generation ID to its serialized result payload.
// Payloads round-trip byte-identically; the stash never reinterprets them.
type Store interface {
	// Put saves the payload under the given generation ID, overwriting any
	// previous entry for the same ID.
	Put(ctx context.Context, id string, payload []byte) error

	// Get returns the payload stored for the given generation ID.
	// Returns ErrNotFound if no entry exists.
	Get(ctx context.Context, id string) ([]byte, error)
}

// Key returns the stash key for a generation ID.
func Key(id string) string {
	return keyPrefix + id
}
