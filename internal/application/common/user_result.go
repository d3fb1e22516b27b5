package common

import "time"

type UserResult struct {
	Id       uint      `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	AboutMe  string    `json:"about_me"`
	Avatar   string    `json:"avatar"`
	LastSeen time.Time `json:"last_seen"`
}
