package interfaces

import (
	"context"

	"github.com/GitPiyusha/flask-microblog/internal/application/command"
	"github.com/GitPiyusha/flask-microblog/internal/application/query"
)

type UserService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Authenticate(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	FindUserById(ctx context.Context, id uint) (*query.UserQueryResult, error)
	FindUserByUsername(ctx context.Context, username string) (*query.UserQueryResult, error)
	UpdateProfile(ctx context.Context, userId uint, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	TouchLastSeen(ctx context.Context, userId uint) error
	RequestPasswordReset(ctx context.Context, resetCommand *command.RequestPasswordResetCommand) error
	ResetPassword(ctx context.Context, resetCommand *command.ResetPasswordCommand) error
}

type FollowService interface {
	Follow(ctx context.Context, actorId, targetId uint) error
	Unfollow(ctx context.Context, actorId, targetId uint) error
	IsFollowing(ctx context.Context, actorId, targetId uint) (bool, error)
	FollowerCount(ctx context.Context, userId uint) (int64, error)
	FollowingCount(ctx context.Context, userId uint) (int64, error)
}

type PostService interface {
	CreatePost(ctx context.Context, authorId uint, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
	UserPosts(ctx context.Context, userId uint) (*query.PostQueryListResult, error)
}

type FeedService interface {
	FollowingPosts(ctx context.Context, userId uint) (*query.PostQueryListResult, error)
}
