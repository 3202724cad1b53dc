// Package worker runs the background jobs that keep the event feed fresh.
package worker

import (
	"context"
	"time"

	"github.com/ajiang05/vibeCheck/internal/service"

	"github.com/sirupsen/logrus"
)

type Refresher interface {
	Refresh(ctx context.Context) (service.LoadResult, bool)
}

type FeedRefreshWorker struct {
	feed     Refresher
	interval time.Duration
}

func NewFeedRefreshWorker(feed Refresher, interval time.Duration) *FeedRefreshWorker {
	return &FeedRefreshWorker{
		feed:     feed,
		interval: interval,
	}
}

// Start performs the initial load, then refreshes on every tick until ctx is
// done. A non-positive interval disables periodic refreshes.
func (w *FeedRefreshWorker) Start(ctx context.Context) {
	w.refresh(ctx)

	if w.interval <= 0 {
		logrus.Info("Periodic feed refresh disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.WithField("interval", w.interval.String()).Info("Feed refresh worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Feed refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *FeedRefreshWorker) refresh(ctx context.Context) {
	result, applied := w.feed.Refresh(ctx)
	if !applied {
		logrus.Debug("Periodic refresh superseded by a newer one")
		return
	}
	if result.Source == service.SourceSeed {
		logrus.Warn("Feed is serving the seed list")
	}
}
