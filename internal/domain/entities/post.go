package entities

import (
	"errors"
	"time"
)

const maxPostLen = 140

type Post struct {
	Id        uint
	Body      string
	CreatedAt time.Time
	AuthorId  uint
}

func NewPost(authorId uint, body string) *Post {
	return &Post{
		Body:      body,
		CreatedAt: time.Now().UTC(),
		AuthorId:  authorId,
	}
}

func (p *Post) validate() error {
	if p.Body == "" {
		return errors.New("post body must not be empty")
	}
	if len([]rune(p.Body)) > maxPostLen {
		return errors.New("post body too long")
	}
	if p.AuthorId == 0 {
		return errors.New("post must have an author")
	}
	return nil
}
