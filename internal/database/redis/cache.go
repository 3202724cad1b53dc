package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	repository "github.com/ajiang05/vibeCheck/internal/database/postgres"
	"github.com/ajiang05/vibeCheck/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const eventRecordsKey = "events:records"

// CachedEventRepository is a read-through cache in front of the remote
// events table. Redis failures fall through to the wrapped repository.
type CachedEventRepository struct {
	next   repository.EventRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedEventRepository(next repository.EventRepository, client *redis.Client, ttl time.Duration) *CachedEventRepository {
	return &CachedEventRepository{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (r *CachedEventRepository) GetAll(ctx context.Context) ([]entity.EventRecord, error) {
	data, err := r.client.Get(ctx, eventRecordsKey).Bytes()
	switch {
	case err == nil:
		var records []entity.EventRecord
		decodeErr := json.Unmarshal(data, &records)
		if decodeErr == nil {
			return records, nil
		}
		logrus.WithError(decodeErr).Warn("Discarding undecodable cached event records")
	case !errors.Is(err, redis.Nil):
		logrus.WithError(err).Warn("Event cache read failed")
	}

	records, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// empty results are not cached so a freshly populated table shows up
	// on the next load
	if len(records) > 0 {
		r.store(ctx, records)
	}
	return records, nil
}

// Invalidate drops the cached records.
func (r *CachedEventRepository) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, eventRecordsKey).Err()
}

func (r *CachedEventRepository) store(ctx context.Context, records []entity.EventRecord) {
	data, err := json.Marshal(records)
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode event records for cache")
		return
	}
	if err := r.client.Set(ctx, eventRecordsKey, data, r.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Event cache write failed")
	}
}
