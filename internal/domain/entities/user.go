package entities

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLen = 64
	maxEmailLen    = 120
	maxAboutMeLen  = 140
)

type User struct {
	Id           uint
	CreatedAt    time.Time
	Username     string
	Email        string
	PasswordHash string
	AboutMe      string
	LastSeen     time.Time
}

func NewUser(username, email string) *User {
	now := time.Now().UTC()
	return &User{
		CreatedAt: now,
		Username:  username,
		Email:     email,
		LastSeen:  now,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if len(u.Username) > maxUsernameLen {
		return errors.New("username too long")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if len(u.Email) > maxEmailLen {
		return errors.New("email too long")
	}
	if len(u.AboutMe) > maxAboutMeLen {
		return errors.New("about me too long")
	}
	return nil
}

// SetPassword replaces the stored credential with a bcrypt hash of plaintext.
// It does not persist; the caller owns the write.
func (u *User) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

// CheckPassword reports whether plaintext matches the stored hash. A user
// that never had a password set fails every check rather than erroring.
func (u *User) CheckPassword(plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// AvatarURL returns the gravatar identicon address for the user's email.
// The md5-of-lowercased-email scheme is gravatar's contract; keep it exact.
func (u *User) AvatarURL(size int) string {
	digest := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d",
		hex.EncodeToString(digest[:]), size)
}

func (u *User) UpdateProfile(username, email, aboutMe string) error {
	u.Username = username
	u.Email = email
	u.AboutMe = aboutMe
	return u.validate()
}

// Touch records authenticated activity.
func (u *User) Touch(at time.Time) {
	u.LastSeen = at.UTC()
}
