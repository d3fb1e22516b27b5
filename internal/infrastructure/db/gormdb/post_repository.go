package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
	"github.com/GitPiyusha/flask-microblog/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	postModel := PostModel{
		Body:      postEntity.Body,
		CreatedAt: postEntity.CreatedAt,
		AuthorId:  postEntity.AuthorId,
	}

	if err := r.db.WithContext(ctx).Create(&postModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, postModel.Id)
}

func (r *PostRepository) FindById(ctx context.Context, id uint) (*entities.Post, error) {
	var postModel PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorId uint) ([]*entities.Post, error) {
	var postModels []PostModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorId).
		Order("created_at DESC, id DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return r.mapToEntities(postModels), nil
}

// ListFeed runs the feed as one query: own posts plus posts from followed
// authors, newest first, descending id breaking timestamp ties.
func (r *PostRepository) ListFeed(ctx context.Context, userId uint) ([]*entities.Post, error) {
	followed := r.db.Model(&FollowerModel{}).
		Select("followed_id").
		Where("follower_id = ?", userId)

	var postModels []PostModel
	err := r.db.WithContext(ctx).
		Where("author_id IN (?) OR author_id = ?", followed, userId).
		Order("created_at DESC, id DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}
	return r.mapToEntities(postModels), nil
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	return &entities.Post{
		Id:        postModel.Id,
		Body:      postModel.Body,
		CreatedAt: postModel.CreatedAt,
		AuthorId:  postModel.AuthorId,
	}
}

func (r *PostRepository) mapToEntities(postModels []PostModel) []*entities.Post {
	posts := make([]*entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, r.mapToEntity(&postModels[i]))
	}
	return posts
}
