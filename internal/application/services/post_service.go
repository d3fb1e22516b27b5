package services

import (
	"context"

	"github.com/GitPiyusha/flask-microblog/internal/application/command"
	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/application/mapper"
	"github.com/GitPiyusha/flask-microblog/internal/application/query"
	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) interfaces.PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, authorId uint, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	author, err := s.userRepo.FindById(ctx, authorId)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post := entities.NewPost(authorId, createCommand.Body)
	validatedPost, err := entities.NewValidatedPost(post)
	if err != nil {
		return nil, err
	}

	createdPost, err := s.postRepo.Create(ctx, validatedPost)
	if err != nil {
		return nil, err
	}

	return &command.CreatePostCommandResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

func (s *PostService) UserPosts(ctx context.Context, userId uint) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, userId)
	if err != nil {
		return nil, err
	}
	return &query.PostQueryListResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
}
