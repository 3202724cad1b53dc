// Package seed provides the static fallback event list.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/ajiang05/vibeCheck/internal/entity"

	"gopkg.in/yaml.v3"
)

//go:embed events.yaml
var eventsYAML []byte

const dateLayout = "2006-01-02"

type seedFile struct {
	Events []seedEvent `yaml:"events"`
}

type seedEvent struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	Location       string  `yaml:"location"`
	Date           string  `yaml:"date"`
	Time           string  `yaml:"time"`
	Cost           string  `yaml:"cost"`
	AgeRequirement string  `yaml:"age_requirement"`
	Attendees      int     `yaml:"attendees"`
	Image          string  `yaml:"image"`
	Category       string  `yaml:"category"`
	MusicGenre     string  `yaml:"music_genre"`
	HostName       string  `yaml:"host_name"`
	Rating         float64 `yaml:"rating"`
	DressCode      *string `yaml:"dress_code"`
	Drinks         *bool   `yaml:"drinks"`
}

// Parse decodes and validates a seed document. The result is non-empty and
// has unique ids.
func Parse(data []byte) ([]entity.Event, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed events: %w", err)
	}
	if len(f.Events) == 0 {
		return nil, fmt.Errorf("seed document has no events")
	}

	seen := make(map[string]struct{}, len(f.Events))
	events := make([]entity.Event, 0, len(f.Events))
	for _, se := range f.Events {
		if _, dup := seen[se.ID]; dup {
			return nil, fmt.Errorf("duplicate seed event id %q", se.ID)
		}
		seen[se.ID] = struct{}{}

		ev, err := se.toEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (se seedEvent) toEvent() (entity.Event, error) {
	date, err := time.Parse(dateLayout, se.Date)
	if err != nil {
		return entity.Event{}, fmt.Errorf("seed event %q: bad date %q: %w", se.ID, se.Date, err)
	}
	category, err := entity.ParseCategory(se.Category)
	if err != nil {
		return entity.Event{}, fmt.Errorf("seed event %q: %w", se.ID, err)
	}

	ev := entity.Event{
		ID:             se.ID,
		Name:           se.Name,
		Description:    se.Description,
		Location:       se.Location,
		Date:           date,
		Time:           se.Time,
		Cost:           se.Cost,
		AgeRequirement: se.AgeRequirement,
		Attendees:      entity.Known(se.Attendees),
		Image:          se.Image,
		Category:       category,
		MusicGenre:     se.MusicGenre,
		HostName:       entity.Known(se.HostName),
		Rating:         entity.Known(se.Rating),
		DressCode:      se.DressCode,
		Drinks:         se.Drinks,
	}
	if err := ev.Validate(); err != nil {
		return entity.Event{}, err
	}
	return ev, nil
}

// Events returns a fresh copy of the embedded seed list.
func Events() ([]entity.Event, error) {
	return Parse(eventsYAML)
}

// MustEvents is Events for process start-up, where a broken embedded file is
// a build defect.
func MustEvents() []entity.Event {
	events, err := Events()
	if err != nil {
		panic(err)
	}
	return events
}
