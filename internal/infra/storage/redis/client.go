// Package redis stores fetch sessions in Redis so that separate invocations
// of the CLI can fetch, retry and generate in turn.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/ethledger/internal/pkg/logger"
	"github.com/gabapcia/ethledger/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

// DefaultSessionTTL is how long a saved session is kept.
const DefaultSessionTTL = 7 * 24 * time.Hour

type client struct {
	conn       *redis.Client
	sessionTTL time.Duration
}

type config struct {
	username   string
	password   string
	db         int
	sessionTTL time.Duration
	retry      retry.Retry
}

type Option func(*config)

func WithCredentials(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

func WithDB(db int) Option {
	return func(c *config) {
		c.db = db
	}
}

// WithSessionTTL sets the expiration of saved sessions. Zero keeps them
// forever. Default: DefaultSessionTTL.
func WithSessionTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.sessionTTL = ttl
	}
}

// WithConnectRetry sets the policy used to reach the server at startup.
// Default: three attempts that give up on server replies.
func WithConnectRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// retryable reports whether a connection error may go away on its own.
// Replies from the server, such as a rejected password, will not.
func retryable(err error) bool {
	var reply redis.Error
	return !errors.As(err, &reply)
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr, retrying the initial ping.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	cfg := config{
		sessionTTL: DefaultSessionTTL,
		retry:      retry.New(retry.WithRetryIf(retryable)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})

	err := cfg.retry.Execute(ctx, func() error {
		err := conn.Ping(ctx).Err()
		if err != nil {
			logger.Warn(ctx, "redis ping failed", "addr", addr, "error", err)
		}
		return err
	})
	if err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	return &client{
		conn:       conn,
		sessionTTL: cfg.sessionTTL,
	}, nil
}
