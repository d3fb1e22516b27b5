package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitPiyusha/flask-microblog/internal/application/services"
)

func TestFollowLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	require.NoError(t, env.follows.Follow(ctx, alice, bob))

	following, err := env.follows.IsFollowing(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, following)

	count, err := env.follows.FollowerCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, env.follows.Unfollow(ctx, alice, bob))

	following, err = env.follows.IsFollowing(ctx, alice, bob)
	require.NoError(t, err)
	assert.False(t, following)

	count, err = env.follows.FollowerCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFollowTwiceLeavesOneEdge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")

	require.NoError(t, env.follows.Follow(ctx, alice, bob))
	require.NoError(t, env.follows.Follow(ctx, alice, bob))

	count, err := env.follows.FollowerCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSelfFollowRejected(t *testing.T) {
	env := newTestEnv(t)

	alice := env.register(t, "alice")

	err := env.follows.Follow(context.Background(), alice, alice)
	assert.ErrorIs(t, err, services.ErrSelfFollow)
}

func TestFollowUnknownTarget(t *testing.T) {
	env := newTestEnv(t)

	alice := env.register(t, "alice")

	err := env.follows.Follow(context.Background(), alice, 999)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	err = env.follows.Unfollow(context.Background(), alice, 999)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
