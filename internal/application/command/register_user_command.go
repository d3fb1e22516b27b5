package command

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
