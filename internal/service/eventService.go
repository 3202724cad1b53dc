package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	repository "github.com/ajiang05/vibeCheck/internal/database/postgres"
	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/metrics"

	"github.com/sirupsen/logrus"
)

type Source string

const (
	SourceRemote Source = "remote"
	SourceSeed   Source = "seed"
)

type LoadResult struct {
	Events      []entity.Event
	Source      Source
	Quarantined int
}

type eventService struct {
	eventRepo    repository.EventRepository
	seed         []entity.Event
	defaultImage string
	metrics      *metrics.Metrics
}

// NewEventService creates the event source adapter. seed must be non-empty;
// its first image is the default for records without one.
func NewEventService(eventRepo repository.EventRepository, seed []entity.Event, m *metrics.Metrics) (EventService, error) {
	if len(seed) == 0 {
		return nil, errors.New("event service needs a non-empty seed list")
	}
	return &eventService{
		eventRepo:    eventRepo,
		seed:         slices.Clone(seed),
		defaultImage: seed[0].Image,
		metrics:      m,
	}, nil
}

func (s *eventService) Load(ctx context.Context) LoadResult {
	records, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Error loading events, serving seed list")
		return s.fallback(0)
	}
	if len(records) == 0 {
		logrus.Info("Remote store has no events, serving seed list")
		return s.fallback(0)
	}

	events, quarantined := s.normalize(records)
	if len(events) == 0 {
		logrus.WithField("quarantined", quarantined).Warn("No remote event survived normalization, serving seed list")
		return s.fallback(quarantined)
	}

	s.metrics.EventsLoaded(string(SourceRemote), quarantined)
	return LoadResult{
		Events:      events,
		Source:      SourceRemote,
		Quarantined: quarantined,
	}
}

func (s *eventService) fallback(quarantined int) LoadResult {
	s.metrics.EventsLoaded(string(SourceSeed), quarantined)
	return LoadResult{
		Events:      slices.Clone(s.seed),
		Source:      SourceSeed,
		Quarantined: quarantined,
	}
}

// normalize maps records in order, dropping records with an unknown
// category and repeated ids.
func (s *eventService) normalize(records []entity.EventRecord) ([]entity.Event, int) {
	events := make([]entity.Event, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	quarantined := 0

	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			logrus.WithField("event_id", rec.ID).Warn("Dropping duplicate remote event")
			continue
		}

		ev, err := NormalizeRecord(rec, s.defaultImage)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"event_id": rec.ID,
				"category": rec.Category,
			}).WithError(err).Warn("Quarantining remote event")
			quarantined++
			continue
		}

		if strings.TrimSpace(ev.Cost) == "" {
			logrus.WithField("event_id", rec.ID).Warn("Remote event has no cost")
		}

		seen[rec.ID] = struct{}{}
		events = append(events, ev)
	}
	return events, quarantined
}

// NormalizeRecord maps one remote row to an Event. Attendees, host name and
// rating are not derivable from the row and stay pending.
func NormalizeRecord(rec entity.EventRecord, defaultImage string) (entity.Event, error) {
	category, err := entity.ParseCategory(rec.Category)
	if err != nil {
		return entity.Event{}, fmt.Errorf("event %s: %w", rec.ID, err)
	}

	return entity.Event{
		ID:             rec.ID,
		Name:           rec.Name,
		Description:    rec.Description,
		Location:       rec.Location,
		Date:           rec.EventDate,
		Time:           DisplayTime(rec.StartTime, rec.EndTime),
		Cost:           rec.Cost,
		AgeRequirement: rec.AgeRequirement,
		Attendees:      entity.Pending[int](),
		Image:          orDefault(rec.ImageURL, defaultImage),
		Category:       category,
		MusicGenre:     orDefault(rec.MusicGenre, ""),
		HostName:       entity.Pending[string](),
		Rating:         entity.Pending[float64](),
		DressCode:      rec.DressCode,
		Drinks:         rec.DrinksAvailable,
	}, nil
}

// DisplayTime joins start and end as "start - end", or returns start alone
// when there is no end.
func DisplayTime(start string, end *string) string {
	if end == nil || *end == "" {
		return start
	}
	return start + TimeSeparator + *end
}

// TimeSeparator sits between start and end in a display time.
const TimeSeparator = " - "

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
