package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	s := New()
	_, err := uuid.Parse(s.Token)
	require.NoError(t, err)
	assert.False(t, s.LoggedIn)

	_, err = store.Get(ctx, s.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	s.LoggedIn = true
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.True(t, got.LoggedIn)
	assert.Equal(t, s.Token, got.Token)

	// sessions are independent of each other
	other := New()
	require.NoError(t, store.Save(ctx, other))
	gotOther, err := store.Get(ctx, other.Token)
	require.NoError(t, err)
	assert.False(t, gotOther.LoggedIn)

	require.NoError(t, store.Delete(ctx, s.Token))
	_, err = store.Get(ctx, s.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	s := New()
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	got.LoggedIn = true

	again, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.False(t, again.LoggedIn)
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s := New()
	require.NoError(t, store.Save(ctx, s))

	now = now.Add(59 * time.Second)
	_, err := store.Get(ctx, s.Token)
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = store.Get(ctx, s.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDropsExpiredOnSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, New()))
	}
	assert.Len(t, store.sessions, 5)

	now = now.Add(2 * time.Minute)
	fresh := New()
	require.NoError(t, store.Save(ctx, fresh))
	assert.Len(t, store.sessions, 1)

	_, err := store.Get(ctx, fresh.Token)
	assert.NoError(t, err)
}

// Runs against a real server when REDIS_ADDR is set, e.g. REDIS_ADDR=localhost:6379
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	store, err := NewRedisStore(addr, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}
