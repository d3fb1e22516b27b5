package common

import "time"

type PostResult struct {
	Id        uint      `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	AuthorId  uint      `json:"author_id"`
}
