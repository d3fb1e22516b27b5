package query

import "github.com/GitPiyusha/flask-microblog/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

// ProfileQueryResult is a user plus everything their profile page shows.
type ProfileQueryResult struct {
	User           *common.UserResult   `json:"user"`
	FollowerCount  int64                `json:"follower_count"`
	FollowingCount int64                `json:"following_count"`
	Posts          []*common.PostResult `json:"posts"`
}
