package command

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type CreatePostCommand struct {
	Body string `json:"body" validate:"required,max=140"`
}

type CreatePostCommandResult struct {
	Result *common.PostResult `json:"result"`
}
