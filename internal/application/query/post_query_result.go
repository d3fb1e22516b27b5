package query

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type PostQueryListResult struct {
	Result []*common.PostResult `json:"result"`
}
