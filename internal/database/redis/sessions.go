package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedSessionPrefix = "session:revoked:"

// SessionRepository records signed-out sessions until their tokens expire.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Revoke marks a session as signed out. ttl should cover the remaining
// token lifetime; a non-positive ttl is a no-op since the token is already
// unusable.
func (r *SessionRepository) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedSessionPrefix+sessionID, 1, ttl).Err()
}

func (r *SessionRepository) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedSessionPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
