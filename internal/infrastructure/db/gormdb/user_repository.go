package gormdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt:    userEntity.CreatedAt,
		Username:     userEntity.Username,
		Email:        userEntity.Email,
		PasswordHash: userEntity.PasswordHash,
		AboutMe:      userEntity.AboutMe,
		LastSeen:     userEntity.LastSeen,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user so the caller sees the assigned id.
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Id:           userEntity.Id,
		CreatedAt:    userEntity.CreatedAt,
		Username:     userEntity.Username,
		Email:        userEntity.Email,
		PasswordHash: userEntity.PasswordHash,
		AboutMe:      userEntity.AboutMe,
		LastSeen:     userEntity.LastSeen,
	}

	if err := r.db.WithContext(ctx).Save(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, userEntity.Id)
}

func (r *UserRepository) UpdateLastSeen(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("last_seen", at.UTC()).Error
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:           userModel.Id,
		CreatedAt:    userModel.CreatedAt,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		AboutMe:      userModel.AboutMe,
		LastSeen:     userModel.LastSeen,
	}
}
