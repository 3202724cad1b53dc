package entity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{raw: "party", want: CategoryParty},
		{raw: "bar", want: CategoryBar},
		{raw: " club ", want: CategoryClub},
		{raw: "lounge", wantErr: true},
		{raw: "Party", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCategory(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownCategory))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelector(t *testing.T) {
	s, err := ParseSelector("")
	require.NoError(t, err)
	assert.Equal(t, SelectorAll, s)

	s, err = ParseSelector("bar")
	require.NoError(t, err)
	c, ok := s.Category()
	assert.True(t, ok)
	assert.Equal(t, CategoryBar, c)

	_, ok = SelectorAll.Category()
	assert.False(t, ok)

	_, err = ParseSelector("brunch")
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestSelectorMatches(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, SelectorAll.Matches(c))
		assert.True(t, Selector(c).Matches(c))
	}
	assert.False(t, Selector(CategoryBar).Matches(CategoryClub))
}

func TestMetric(t *testing.T) {
	pending := Pending[int]()
	assert.True(t, pending.IsPending())
	assert.Equal(t, 7, pending.Or(7))

	known := Known(0)
	v, ok := known.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, known.Or(7))

	var zero Metric[float64]
	assert.True(t, zero.IsPending())
}

func TestMetricJSON(t *testing.T) {
	payload := struct {
		A Metric[int]    `json:"a"`
		B Metric[string] `json:"b"`
	}{A: Known(12), B: Pending[string]()}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12,"b":null}`, string(b))

	var back struct {
		A Metric[int]    `json:"a"`
		B Metric[string] `json:"b"`
	}
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 12, back.A.Or(0))
	assert.True(t, back.B.IsPending())
}

func validEvent() Event {
	return Event{
		ID:        "1",
		Name:      "Neon Nights",
		Date:      time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC),
		Time:      "22:00 - 04:00",
		Cost:      "$20",
		Attendees: Known(120),
		Category:  CategoryClub,
		HostName:  Known("DJ Pulse"),
		Rating:    Known(4.8),
	}
}

func TestEventValidate(t *testing.T) {
	require.NoError(t, validEvent().Validate())

	tests := []struct {
		name   string
		mutate func(e *Event)
	}{
		{name: "missing id", mutate: func(e *Event) { e.ID = "" }},
		{name: "missing cost", mutate: func(e *Event) { e.Cost = "" }},
		{name: "out of set category", mutate: func(e *Event) { e.Category = "lounge" }},
		{name: "zero date", mutate: func(e *Event) { e.Date = time.Time{} }},
		{name: "negative attendees", mutate: func(e *Event) { e.Attendees = Known(-1) }},
		{name: "rating above five", mutate: func(e *Event) { e.Rating = Known(5.1) }},
		{name: "negative rating", mutate: func(e *Event) { e.Rating = Known(-0.5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			assert.ErrorIs(t, e.Validate(), ErrInvalidEvent)
		})
	}
}

func TestEventValidatePendingMetrics(t *testing.T) {
	e := validEvent()
	e.Attendees = Pending[int]()
	e.Rating = Pending[float64]()
	e.HostName = Pending[string]()
	assert.NoError(t, e.Validate())
}

func TestEventIsFree(t *testing.T) {
	e := validEvent()
	assert.False(t, e.IsFree())
	e.Cost = CostFree
	assert.True(t, e.IsFree())
}
