package secondary

import (
	"context"
	"time"
)

// SessionRepository defines the interface for server-issued session tokens
type SessionRepository interface {
	Create(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	// Get returns the user id bound to the token, 0 if unknown or expired.
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}
