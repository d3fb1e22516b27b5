package command

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type UpdateProfileCommand struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
	AboutMe  string `json:"about_me" validate:"max=140"`
}

type UpdateProfileCommandResult struct {
	Result *common.UserResult `json:"result"`
}
