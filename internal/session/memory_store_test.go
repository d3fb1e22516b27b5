package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	sessionId, err := store.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, sessionId)

	userId, err := store.Get(ctx, sessionId)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userId)

	require.NoError(t, store.Delete(ctx, sessionId))

	userId, err = store.Get(ctx, sessionId)
	require.NoError(t, err)
	assert.Zero(t, userId)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	userId, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Zero(t, userId)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	sessionId, err := store.Create(ctx, 7)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	userId, err := store.Get(ctx, sessionId)
	require.NoError(t, err)
	assert.Zero(t, userId, "expired session must resolve to no user")
}

func TestMemoryStoreDistinctSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 2)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	userId, err := store.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, uint(2), userId)
}
