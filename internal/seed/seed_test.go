package seed

import (
	"testing"

	"github.com/ajiang05/vibeCheck/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedEvents(t *testing.T) {
	events, err := Events()
	require.NoError(t, err)
	require.NotEmpty(t, events)

	ids := make(map[string]bool)
	covered := make(map[entity.Category]bool)
	for _, ev := range events {
		assert.False(t, ids[ev.ID], "duplicate id %s", ev.ID)
		ids[ev.ID] = true
		covered[ev.Category] = true

		assert.NoError(t, ev.Validate())
		assert.False(t, ev.Attendees.IsPending())
		assert.False(t, ev.Rating.IsPending())
		assert.False(t, ev.HostName.IsPending())
		assert.NotEmpty(t, ev.Image)
	}
	for _, c := range entity.Categories {
		assert.True(t, covered[c], "seed list has no %s event", c)
	}
}

func TestEventsReturnsIndependentCopies(t *testing.T) {
	a := MustEvents()
	b := MustEvents()
	a[0].Name = "changed"
	assert.NotEqual(t, a[0].Name, b[0].Name)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: "events: []"},
		{name: "bad yaml", doc: "events: ["},
		{name: "unknown category", doc: `
events:
  - {id: "1", name: a, date: "2026-01-01", time: "20:00", cost: Free, category: lounge}`},
		{name: "duplicate id", doc: `
events:
  - {id: "1", name: a, date: "2026-01-01", time: "20:00", cost: Free, category: bar}
  - {id: "1", name: b, date: "2026-01-02", time: "20:00", cost: Free, category: bar}`},
		{name: "bad date", doc: `
events:
  - {id: "1", name: a, date: tomorrow, time: "20:00", cost: Free, category: bar}`},
		{name: "rating out of range", doc: `
events:
  - {id: "1", name: a, date: "2026-01-01", time: "20:00", cost: Free, category: bar, rating: 7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
