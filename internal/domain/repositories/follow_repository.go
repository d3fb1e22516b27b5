package repositories

import "context"

// FollowRepository owns the directed follower edge set. Follow and Unfollow
// are idempotent at this layer: inserting an existing edge or deleting a
// missing one is a no-op, with the composite primary key as the final
// guarantee against concurrent duplicate inserts.
type FollowRepository interface {
	Follow(ctx context.Context, followerId, followedId uint) error
	Unfollow(ctx context.Context, followerId, followedId uint) error
	IsFollowing(ctx context.Context, followerId, followedId uint) (bool, error)
	FollowerCount(ctx context.Context, userId uint) (int64, error)
	FollowingCount(ctx context.Context, userId uint) (int64, error)
	FollowedIds(ctx context.Context, followerId uint) ([]uint, error)
}
