package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/GitPiyusha/flask-microblog/internal/application/command"
	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/application/mapper"
	"github.com/GitPiyusha/flask-microblog/internal/application/query"
	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
	"github.com/GitPiyusha/flask-microblog/internal/infrastructure"
)

type UserService struct {
	userRepo   repositories.UserRepository
	resetToken *infrastructure.ResetTokenService
	mailer     infrastructure.Mailer
	baseURL    string
	logger     zerolog.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	resetToken *infrastructure.ResetTokenService,
	mailer infrastructure.Mailer,
	baseURL string,
	logger zerolog.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		resetToken: resetToken,
		mailer:     mailer,
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (s *UserService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Prechecks keep the common case away from constraint violations; the
	// unique indexes on username and email stay authoritative under races.
	existingUser, err := s.userRepo.FindByUsername(ctx, registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	existingUser, err = s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	user := entities.NewUser(registerCommand.Username, registerCommand.Email)
	if err := user.SetPassword(registerCommand.Password); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", createdUser.Username).Msg("user registered")

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) Authenticate(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(loginCommand.Password) {
		return nil, ErrInvalidCredentials
	}

	return &command.LoginUserCommandResult{
		User: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) FindUserById(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) FindUserByUsername(ctx context.Context, username string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userId uint, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if updateCommand.Username != user.Username {
		existingUser, err := s.userRepo.FindByUsername(ctx, updateCommand.Username)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, ErrUsernameTaken
		}
	}

	if updateCommand.Email != user.Email {
		existingUser, err := s.userRepo.FindByEmail(ctx, updateCommand.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, ErrEmailTaken
		}
	}

	if err := user.UpdateProfile(updateCommand.Username, updateCommand.Email, updateCommand.AboutMe); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProfileCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) TouchLastSeen(ctx context.Context, userId uint) error {
	return s.userRepo.UpdateLastSeen(ctx, userId, time.Now())
}

// RequestPasswordReset succeeds silently for unknown emails so the endpoint
// cannot be used to probe which addresses have accounts.
func (s *UserService) RequestPasswordReset(ctx context.Context, resetCommand *command.RequestPasswordResetCommand) error {
	user, err := s.userRepo.FindByEmail(ctx, resetCommand.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := s.resetToken.Issue(user.Id)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset_password/%s", s.baseURL, token)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset email sent")
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, resetCommand *command.ResetPasswordCommand) error {
	userId, ok := s.resetToken.Verify(resetCommand.Token)
	if !ok {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	if err := user.SetPassword(resetCommand.Password); err != nil {
		return err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return err
	}

	if _, err := s.userRepo.Update(ctx, validatedUser); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset completed")
	return nil
}
