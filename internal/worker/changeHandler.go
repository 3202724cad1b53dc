package worker

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// ChangeNotification is what the store publishes when event rows change.
// Every field is informational: any message triggers a refresh.
type ChangeNotification struct {
	Table     string `json:"table"`
	Operation string `json:"op"`
	ID        string `json:"id"`
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type ChangeHandler struct {
	feed  Refresher
	cache CacheInvalidator
}

// NewChangeHandler refreshes feed on every change notification. cache may be
// nil; otherwise it is dropped first so the refresh reads the store.
func NewChangeHandler(feed Refresher, cache CacheInvalidator) *ChangeHandler {
	return &ChangeHandler{
		feed:  feed,
		cache: cache,
	}
}

// Handle never fails, so malformed messages are acknowledged instead of
// redelivered forever.
func (h *ChangeHandler) Handle(ctx context.Context, body []byte) error {
	var change ChangeNotification
	entry := logrus.NewEntry(logrus.StandardLogger())
	if err := json.Unmarshal(body, &change); err != nil {
		entry.WithError(err).WithField("size", len(body)).Warn("Malformed change notification")
	} else {
		entry = entry.WithFields(logrus.Fields{
			"table": change.Table,
			"op":    change.Operation,
			"id":    change.ID,
		})
	}
	entry.Info("Events changed, refreshing feed")

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx); err != nil {
			entry.WithError(err).Warn("Failed to invalidate event cache")
		}
	}

	h.feed.Refresh(ctx)
	return nil
}
