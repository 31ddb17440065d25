package kv

import (
	"context"
	"time"
)

// Store is the contract for a persisted key-value blob store.
// It lets the cart and checkout stores swap implementations
// (Postgres for durable records, Redis for TTL-bound ones, in-memory for tests).
type Store interface {
	// Get reads the value at key and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: key exists, data unmarshaled into dest
	// - found = false: key absent, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set writes value at key with an optional TTL.
	// ttl = 0 means the record never expires on its own.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the underlying connection.
	Ping(ctx context.Context) error
}
