package session

import "context"

// Store maps opaque session ids to user ids. Lookups return (0, nil) for
// unknown or expired sessions; errors mean the backing store failed.
type Store interface {
	Create(ctx context.Context, userId uint) (string, error)
	// Get resolves a session and refreshes its expiry.
	Get(ctx context.Context, sessionId string) (uint, error)
	Delete(ctx context.Context, sessionId string) error
}
