package gormdb

import "time"

type UserModel struct {
	Id           uint      `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	Email        string    `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:256"`
	AboutMe      string    `gorm:"size:140"`
	LastSeen     time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	Id        uint      `gorm:"primaryKey"`
	Body      string    `gorm:"size:140;not null"`
	CreatedAt time.Time `gorm:"index"`
	AuthorId  uint      `gorm:"not null;index"`
	Author    UserModel `gorm:"foreignKey:AuthorId;constraint:OnDelete:CASCADE"`
}

func (PostModel) TableName() string {
	return "posts"
}

// FollowerModel is the directed edge "follower observes followed". The
// composite primary key doubles as the uniqueness constraint; duplicate
// inserts are resolved at the database, not in process.
type FollowerModel struct {
	FollowerId uint      `gorm:"primaryKey;autoIncrement:false"`
	FollowedId uint      `gorm:"primaryKey;autoIncrement:false"`
	Follower   UserModel `gorm:"foreignKey:FollowerId;constraint:OnDelete:CASCADE"`
	Followed   UserModel `gorm:"foreignKey:FollowedId;constraint:OnDelete:CASCADE"`
}

func (FollowerModel) TableName() string {
	return "followers"
}
