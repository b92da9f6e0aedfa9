package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Host     string
	Port     string
	Password string
}

// Client wraps go-redis with the namespaced stores the application uses.
type Client struct {
	rdb *redis.Client

	Sessions *SessionStore
}

func New(opts Options) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Client{
		rdb:      rdb,
		Sessions: &SessionStore{rdb: rdb},
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
