package gormdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) repositories.FollowRepository {
	return &FollowRepository{db: db}
}

// Follow inserts the edge, letting the primary key absorb duplicates. Two
// racing inserts for the same pair still leave exactly one row.
func (r *FollowRepository) Follow(ctx context.Context, followerId, followedId uint) error {
	edge := FollowerModel{FollowerId: followerId, FollowedId: followedId}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}

// Unfollow deletes the edge if present; a missing edge is not an error.
func (r *FollowRepository) Unfollow(ctx context.Context, followerId, followedId uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Delete(&FollowerModel{}).Error
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerId, followedId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FollowerModel{}).
		Where("follower_id = ? AND followed_id = ?", followerId, followedId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FollowRepository) FollowerCount(ctx context.Context, userId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FollowerModel{}).
		Where("followed_id = ?", userId).
		Count(&count).Error
	return count, err
}

func (r *FollowRepository) FollowingCount(ctx context.Context, userId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FollowerModel{}).
		Where("follower_id = ?", userId).
		Count(&count).Error
	return count, err
}

func (r *FollowRepository) FollowedIds(ctx context.Context, followerId uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&FollowerModel{}).
		Where("follower_id = ?", followerId).
		Pluck("followed_id", &ids).Error
	return ids, err
}
