package service

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/metrics"

	"github.com/sirupsen/logrus"
)

const notifyTimeout = 5 * time.Second

// FeedRefreshed describes a load that replaced the active list.
type FeedRefreshed struct {
	Token       uint64    `json:"token"`
	Source      Source    `json:"source"`
	Count       int       `json:"count"`
	Quarantined int       `json:"quarantined"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// Snapshot is a read-only copy of the active list.
type Snapshot struct {
	Events      []entity.Event
	Source      Source
	Token       uint64
	RefreshedAt time.Time
}

// Feed holds the active event list. Every Refresh takes a token from a
// monotonic counter and its result is applied only if no later Refresh was
// issued in the meantime, so a slow load can never overwrite a newer one.
type Feed struct {
	loader      EventService
	notifier    RefreshNotifier
	metrics     *metrics.Metrics
	loadTimeout time.Duration
	now         func() time.Time

	issued atomic.Uint64

	mu          sync.RWMutex
	events      []entity.Event
	source      Source
	applied     uint64
	refreshedAt time.Time
}

// NewFeed starts out serving seed until the first Refresh completes.
// notifier may be nil.
func NewFeed(loader EventService, seed []entity.Event, notifier RefreshNotifier, m *metrics.Metrics, loadTimeout time.Duration) *Feed {
	return &Feed{
		loader:      loader,
		notifier:    notifier,
		metrics:     m,
		loadTimeout: loadTimeout,
		now:         time.Now,
		events:      slices.Clone(seed),
		source:      SourceSeed,
	}
}

// Refresh loads the list and applies it unless superseded. It reports the
// load result and whether it was applied.
func (f *Feed) Refresh(ctx context.Context) (LoadResult, bool) {
	token := f.issued.Add(1)

	loadCtx := ctx
	if f.loadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, f.loadTimeout)
		defer cancel()
	}

	result := f.loader.Load(loadCtx)

	f.mu.Lock()
	if token != f.issued.Load() {
		f.mu.Unlock()
		logrus.WithFields(logrus.Fields{
			"token":  token,
			"latest": f.issued.Load(),
		}).Debug("Discarding superseded feed load")
		f.metrics.FeedStaleDropped()
		return result, false
	}
	f.events = result.Events
	f.source = result.Source
	f.applied = token
	f.refreshedAt = f.now()
	refreshedAt := f.refreshedAt
	f.mu.Unlock()

	f.metrics.FeedApplied(len(result.Events))
	logrus.WithFields(logrus.Fields{
		"token":       token,
		"source":      result.Source,
		"count":       len(result.Events),
		"quarantined": result.Quarantined,
	}).Info("Feed refreshed")

	if f.notifier != nil {
		event := FeedRefreshed{
			Token:       token,
			Source:      result.Source,
			Count:       len(result.Events),
			Quarantined: result.Quarantined,
			RefreshedAt: refreshedAt,
		}
		// the list is already applied: publishing gets its own budget
		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := f.notifier.FeedRefreshed(notifyCtx, event); err != nil {
			logrus.WithError(err).Warn("Failed to publish feed refresh")
		}
	}
	return result, true
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return Snapshot{
		Events:      slices.Clone(f.events),
		Source:      f.source,
		Token:       f.applied,
		RefreshedAt: f.refreshedAt,
	}
}

// Events returns a copy of the active list.
func (f *Feed) Events() []entity.Event {
	return f.Snapshot().Events
}

func (f *Feed) Get(id string) (entity.Event, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, ev := range f.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return entity.Event{}, entity.ErrEventNotFound
}
