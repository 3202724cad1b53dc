package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ajiang05/vibeCheck/internal/entity"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetAll(ctx context.Context) ([]entity.EventRecord, error) {
	query := `
		SELECT
			id, name, description, location, event_date,
			to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
			cost, age_requirement, image_url, category,
			music_genre, dress_code, drinks_available
		FROM events
		ORDER BY event_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var records []entity.EventRecord
	for rows.Next() {
		var rec entity.EventRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Description,
			&rec.Location,
			&rec.EventDate,
			&rec.StartTime,
			&rec.EndTime,
			&rec.Cost,
			&rec.AgeRequirement,
			&rec.ImageURL,
			&rec.Category,
			&rec.MusicGenre,
			&rec.DressCode,
			&rec.DrinksAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return records, nil
}
