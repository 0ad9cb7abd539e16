package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/ethledger/internal/txfetch"

	"github.com/redis/go-redis/v9"
)

// latestSessionKey holds the JSON snapshot of the most recent session.
const latestSessionKey = "session:latest"

// SaveSession overwrites the stored snapshot and refreshes its expiration.
func (c *client) SaveSession(ctx context.Context, snapshot txfetch.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, latestSessionKey, data, c.sessionTTL).Err()
}

// LoadSession returns the stored snapshot, or txfetch.ErrSessionNotFound when
// none was saved or it expired.
func (c *client) LoadSession(ctx context.Context) (txfetch.Snapshot, error) {
	data, err := c.conn.Get(ctx, latestSessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txfetch.ErrSessionNotFound
		}

		return txfetch.Snapshot{}, err
	}

	var snapshot txfetch.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return txfetch.Snapshot{}, err
	}

	return snapshot, nil
}

// Compile-time assertion to ensure client implements the SessionStorage interface.
var _ txfetch.SessionStorage = new(client)
