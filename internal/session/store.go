// Package session implements the lookup-or-create session identifier logic
// once, against an injected key-value Store. The client variant uses a store
// without expiry; the server variant writes entries with a TTL.
package session

import (
	"context"
	"time"
)

// Entry is a stored session identifier.
type Entry struct {
	Value     string
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Store is the key-value capability the Manager is written against.
// Get returns domain.ErrSessionNotFound for a missing or expired key.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key, value string) error
	SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error
}
