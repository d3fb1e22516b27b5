package services

import (
	"context"

	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

type FollowService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
) interfaces.FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the actor→target edge. Following an already-followed user
// is a no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, actorId, targetId uint) error {
	if actorId == targetId {
		return ErrSelfFollow
	}

	if err := s.requireUser(ctx, targetId); err != nil {
		return err
	}

	return s.followRepo.Follow(ctx, actorId, targetId)
}

// Unfollow removes the actor→target edge; a missing edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, actorId, targetId uint) error {
	if err := s.requireUser(ctx, targetId); err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, actorId, targetId)
}

func (s *FollowService) IsFollowing(ctx context.Context, actorId, targetId uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, actorId, targetId)
}

func (s *FollowService) FollowerCount(ctx context.Context, userId uint) (int64, error) {
	return s.followRepo.FollowerCount(ctx, userId)
}

func (s *FollowService) FollowingCount(ctx context.Context, userId uint) (int64, error) {
	return s.followRepo.FollowingCount(ctx, userId)
}

func (s *FollowService) requireUser(ctx context.Context, userId uint) error {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
