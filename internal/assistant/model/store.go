package model

import "context"

// KeyValueStore is the persistent key-value capability the engine consumes
// for tip suppression state and the response cache. Writes are
// last-writer-wins; all stored values are independently idempotent.
type KeyValueStore interface {
	// Get retrieves the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
