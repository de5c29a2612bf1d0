package store

import (
	"context"
	"time"
)

// Store defines the interface for token persistence.
type Store interface {
	// Exists reports whether the token is known and not expired.
	Exists(ctx context.Context, token string) (bool, error)

	// Save registers the token with the given TTL, overwriting any previous
	// registration.
	Save(ctx context.Context, token string, ttl time.Duration) error

	// Touch extends a known token's TTL. Returns ErrTokenNotFound for
	// unknown or expired tokens.
	Touch(ctx context.Context, token string, ttl time.Duration) error

	// Delete removes the token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
