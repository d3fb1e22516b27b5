package repositories

import (
	"context"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

type PostRepository interface {
	Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error)
	FindById(ctx context.Context, id uint) (*entities.Post, error)
	// ListByAuthor returns a single author's posts, newest first.
	ListByAuthor(ctx context.Context, authorId uint) ([]*entities.Post, error)
	// ListFeed returns posts authored by userId or by any account userId
	// follows, ordered by creation time descending with descending id as
	// the tie-break.
	ListFeed(ctx context.Context, userId uint) ([]*entities.Post, error)
}
