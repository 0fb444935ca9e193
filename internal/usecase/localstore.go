package usecase

import (
	"context"
	"time"
)

// Fixed key prefixes for client-advisory state. None of this is ever
// written back to the content provider.
const (
	KeyLoginAttempts = "portal:attempts:"
	KeyBookmarks     = "portal:bookmarks:"
	KeySession       = "portal:session:"
)

// LocalStore is the local persistence port for session snapshots, the
// login-attempt counter and per-member bookmark sets. Backed by Redis in
// production and an in-memory map otherwise.
type LocalStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Incr increments a counter, setting ttl when the key is created.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	SetAdd(ctx context.Context, key string, members ...string) error
	SetRemove(ctx context.Context, key string, members ...string) error
	SetMembers(ctx context.Context, key string) ([]string, error)
}
