package mapper

import (
	"github.com/GitPiyusha/flask-microblog/internal/application/common"
	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	return &common.PostResult{
		Id:        post.Id,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		AuthorId:  post.AuthorId,
	}
}

func NewPostResultsFromEntities(posts []*entities.Post) []*common.PostResult {
	results := make([]*common.PostResult, 0, len(posts))
	for _, post := range posts {
		results = append(results, NewPostResultFromEntity(post))
	}
	return results
}
