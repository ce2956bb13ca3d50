package ports

import "context"

// KeyValueStore is the persistence collaborator. Values are opaque bytes;
// the application layer stores JSON.
type KeyValueStore interface {
	// Get returns the values for the requested keys. Missing keys are
	// absent from the returned map rather than reported as errors.
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)

	// Set writes all entries, overwriting existing values
	Set(ctx context.Context, entries map[string][]byte) error
}
