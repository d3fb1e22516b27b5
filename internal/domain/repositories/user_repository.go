package repositories

import (
	"context"
	"time"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

// UserRepository lookups return (nil, nil) when no row matches; errors are
// reserved for the datastore misbehaving.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	UpdateLastSeen(ctx context.Context, id uint, at time.Time) error
}
