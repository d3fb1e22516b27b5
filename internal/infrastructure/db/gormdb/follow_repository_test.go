package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	following, err := repo.IsFollowing(ctx, alice.Id, bob.Id)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))

	following, err = repo.IsFollowing(ctx, alice.Id, bob.Id)
	require.NoError(t, err)
	assert.True(t, following)

	// Directed: bob does not follow alice back.
	following, err = repo.IsFollowing(ctx, bob.Id, alice.Id)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, repo.Unfollow(ctx, alice.Id, bob.Id))

	following, err = repo.IsFollowing(ctx, alice.Id, bob.Id)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))
	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))

	count, err := repo.FollowerCount(ctx, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUnfollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	// Unfollowing a user that was never followed is a no-op.
	require.NoError(t, repo.Unfollow(ctx, alice.Id, bob.Id))

	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))
	require.NoError(t, repo.Unfollow(ctx, alice.Id, bob.Id))
	require.NoError(t, repo.Unfollow(ctx, alice.Id, bob.Id))

	count, err := repo.FollowerCount(ctx, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFollowCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))
	require.NoError(t, repo.Follow(ctx, carol.Id, bob.Id))
	require.NoError(t, repo.Follow(ctx, alice.Id, carol.Id))

	followerCount, err := repo.FollowerCount(ctx, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followerCount)

	followingCount, err := repo.FollowingCount(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followingCount)

	followingCount, err = repo.FollowingCount(ctx, bob.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), followingCount)
}

func TestFollowedIds(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	require.NoError(t, repo.Follow(ctx, alice.Id, bob.Id))
	require.NoError(t, repo.Follow(ctx, alice.Id, carol.Id))

	ids, err := repo.FollowedIds(ctx, alice.Id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.Id, carol.Id}, ids)

	ids, err = repo.FollowedIds(ctx, bob.Id)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
