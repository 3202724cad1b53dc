package entity

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Placeholders shown while a Metric is pending.
const (
	PlaceholderAttendees = 0
	PlaceholderHostName  = "Host"
	PlaceholderRating    = 4.5
)

const (
	CostFree  = "Free"
	MaxRating = 5.0
)

// Event is the normalized, display-ready event. Values are never mutated
// after construction; filtering and rendering work on copies.
type Event struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	Date           time.Time       `json:"date" validate:"required"`
	Time           string          `json:"time" validate:"required"`
	Cost           string          `json:"cost" validate:"required"`
	AgeRequirement string          `json:"age_requirement"`
	Attendees      Metric[int]     `json:"attendees"`
	Image          string          `json:"image"`
	Category       Category        `json:"category" validate:"required,oneof=party bar club"`
	MusicGenre     string          `json:"music_genre"`
	HostName       Metric[string]  `json:"host_name"`
	Rating         Metric[float64] `json:"rating"`
	DressCode      *string         `json:"dress_code,omitempty"`
	Drinks         *bool           `json:"drinks,omitempty"`
}

// EventRecord is a raw row of the remote events table.
type EventRecord struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Location        string    `json:"location" db:"location"`
	EventDate       time.Time `json:"event_date" db:"event_date"`
	StartTime       string    `json:"start_time" db:"start_time"`
	EndTime         *string   `json:"end_time" db:"end_time"`
	Cost            string    `json:"cost" db:"cost"`
	AgeRequirement  string    `json:"age_requirement" db:"age_requirement"`
	ImageURL        *string   `json:"image_url" db:"image_url"`
	Category        string    `json:"category" db:"category"`
	MusicGenre      *string   `json:"music_genre" db:"music_genre"`
	DressCode       *string   `json:"dress_code" db:"dress_code"`
	DrinksAvailable *bool     `json:"drinks_available" db:"drinks_available"`
}

var validate = validator.New()

func (e Event) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: event %q: %v", ErrInvalidEvent, e.ID, err)
	}
	if n, ok := e.Attendees.Get(); ok && n < 0 {
		return fmt.Errorf("%w: event %q: negative attendees %d", ErrInvalidEvent, e.ID, n)
	}
	if r, ok := e.Rating.Get(); ok && (r < 0 || r > MaxRating) {
		return fmt.Errorf("%w: event %q: rating %v out of range", ErrInvalidEvent, e.ID, r)
	}
	return nil
}

func (e Event) IsFree() bool {
	return e.Cost == CostFree
}
