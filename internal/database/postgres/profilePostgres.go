package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ajiang05/vibeCheck/internal/entity"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, bio
		FROM profiles
		WHERE id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Bio,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}

	return &profile, nil
}
