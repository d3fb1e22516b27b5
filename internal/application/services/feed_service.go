package services

import (
	"context"

	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/application/mapper"
	"github.com/GitPiyusha/flask-microblog/internal/application/query"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

// FeedService assembles the home timeline: the user's own posts plus posts
// from every account they follow, newest first. The ordering contract
// (created_at desc, id desc) lives in the post repository's feed query.
type FeedService struct {
	postRepo repositories.PostRepository
}

func NewFeedService(postRepo repositories.PostRepository) interfaces.FeedService {
	return &FeedService{postRepo: postRepo}
}

func (s *FeedService) FollowingPosts(ctx context.Context, userId uint) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.ListFeed(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &query.PostQueryListResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
}
