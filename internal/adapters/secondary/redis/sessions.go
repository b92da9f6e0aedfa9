package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// SessionStore keeps server-issued session tokens. The role attached to a
// request is always resolved from here, never taken from the client.
type SessionStore struct {
	rdb *redis.Client
}

// Create issues a fresh token for the user and stores it with the given TTL.
func (s *SessionStore) Create(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	err := s.rdb.Set(ctx, sessionPrefix+token, strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get returns the user id bound to the token, or 0 if the token is unknown
// or expired.
func (s *SessionStore) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.rdb.Get(ctx, sessionPrefix+token).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Delete invalidates the token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionPrefix+token).Err()
}
