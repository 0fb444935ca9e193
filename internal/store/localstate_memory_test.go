package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocalStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLocalStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryLocalStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLocalStore()

	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))

	clock = clock.Add(59 * time.Second)
	_, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok, "still inside the ttl")

	clock = clock.Add(2 * time.Second)
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok, "expired entries read as absent")
}

func TestMemoryLocalStore_Incr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLocalStore()

	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	n, err := s.Incr(ctx, "attempts", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Incr(ctx, "attempts", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "subsequent increments build on the stored count")

	// Later increments must not push the window out.
	clock = clock.Add(10 * time.Minute)
	n, err = s.Incr(ctx, "attempts", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	clock = clock.Add(6 * time.Minute)
	n, err = s.Incr(ctx, "attempts", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counter restarts once the original window lapses")
}

func TestMemoryLocalStore_Sets(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryLocalStore()

	members, err := s.SetMembers(ctx, "bookmarks")
	require.NoError(t, err)
	assert.Empty(t, members)

	require.NoError(t, s.SetAdd(ctx, "bookmarks", "r1", "r2"))
	require.NoError(t, s.SetAdd(ctx, "bookmarks", "r2"), "re-adding is a no-op")

	members, err = s.SetMembers(ctx, "bookmarks")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"r1", "r2"}, members)

	require.NoError(t, s.SetRemove(ctx, "bookmarks", "r1", "r9"))
	members, _ = s.SetMembers(ctx, "bookmarks")
	assert.Equal(t, []string{"r2"}, members)

	require.NoError(t, s.SetRemove(ctx, "untouched", "x"), "removing from a missing set is fine")

	require.NoError(t, s.Delete(ctx, "bookmarks"))
	members, _ = s.SetMembers(ctx, "bookmarks")
	assert.Empty(t, members)
}
