package services

import "errors"

var (
	// ErrInvalidCredentials covers unknown username and wrong password
	// alike; callers must not learn which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrSelfFollow        = errors.New("cannot follow yourself")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
