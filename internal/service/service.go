package service

import (
	"context"

	"github.com/ajiang05/vibeCheck/internal/auth"
)

// EventService loads the displayable event list.
type EventService interface {
	// Load never fails: remote errors and empty results degrade to the seed
	// list.
	Load(ctx context.Context) LoadResult
}

// ProfileService drives the profile screen for one authentication context.
type ProfileService interface {
	Open(ctx context.Context, session auth.Context) *ProfileView
}

// RefreshNotifier is told about every list that replaced the active feed.
type RefreshNotifier interface {
	FeedRefreshed(ctx context.Context, event FeedRefreshed) error
}
