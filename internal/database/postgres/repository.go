package repository

import (
	"context"

	"github.com/ajiang05/vibeCheck/internal/entity"
)

// EventRepository is the read-only view of the remote events table.
type EventRepository interface {
	// GetAll returns every record ordered by event date ascending.
	GetAll(ctx context.Context) ([]entity.EventRecord, error)
}

type ProfileRepository interface {
	// GetByID returns nil, nil when the user has no profile row.
	GetByID(ctx context.Context, userID string) (*entity.Profile, error)
}
