package store

import "context"

// Store defines the interface for session-scoped string storage.
// Implementations must be safe for concurrent use within one process;
// no cross-process write ordering is guaranteed.
type Store interface {
	// Get retrieves the raw value for key.
	// Returns ("", false, nil) if no entry exists.
	// Returns (value, true, nil) if an entry exists, even an empty one.
	// Returns ("", false, err) on backend errors.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes the raw value for key, creating or overwriting the entry.
	Set(ctx context.Context, key, value string) error

	// Delete removes the entry for key. It is a no-op if no entry exists.
	Delete(ctx context.Context, key string) error
}

// ErrStoreClosed is returned when operations are attempted on a closed store.
type ErrStoreClosed struct{}

func (e ErrStoreClosed) Error() string {
	return "store is closed"
}
