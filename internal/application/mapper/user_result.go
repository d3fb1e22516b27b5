package mapper

import (
	"github.com/GitPiyusha/flask-microblog/internal/application/common"
	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

const avatarSize = 128

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		AboutMe:  user.AboutMe,
		Avatar:   user.AvatarURL(avatarSize),
		LastSeen: user.LastSeen,
	}
}

func NewUserResultFromValidatedEntity(validatedUser *entities.ValidatedUser) *common.UserResult {
	return NewUserResultFromEntity(validatedUser.GetUser())
}
