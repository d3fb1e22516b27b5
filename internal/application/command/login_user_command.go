package command

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type LoginUserCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserCommandResult struct {
	User *common.UserResult `json:"user"`
}
