package service

import (
	"testing"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/seed"

	"github.com/stretchr/testify/assert"
)

func mixedEvents() []entity.Event {
	cats := []entity.Category{
		entity.CategoryParty, entity.CategoryBar, entity.CategoryClub,
		entity.CategoryBar, entity.CategoryParty, entity.CategoryClub, entity.CategoryBar,
	}
	events := make([]entity.Event, len(cats))
	for i, c := range cats {
		events[i] = entity.Event{ID: string(rune('a' + i)), Category: c}
	}
	return events
}

func isSubsequence(sub, full []entity.Event) bool {
	i := 0
	for _, ev := range full {
		if i < len(sub) && sub[i].ID == ev.ID {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterAllIsIdentity(t *testing.T) {
	for _, events := range [][]entity.Event{mixedEvents(), seed.MustEvents(), nil} {
		assert.Equal(t, events, Filter(events, entity.SelectorAll))
	}
}

func TestFilterByCategory(t *testing.T) {
	events := mixedEvents()

	assert.Equal(t, []string{"a", "e"}, idsOf(Filter(events, entity.Selector(entity.CategoryParty))))
	assert.Equal(t, []string{"b", "d", "g"}, idsOf(Filter(events, entity.Selector(entity.CategoryBar))))
	assert.Equal(t, []string{"c", "f"}, idsOf(Filter(events, entity.Selector(entity.CategoryClub))))
}

func TestFilterProperties(t *testing.T) {
	inputs := [][]entity.Event{mixedEvents(), seed.MustEvents(), {}, nil}

	for _, events := range inputs {
		for _, s := range entity.Selectors {
			once := Filter(events, s)
			assert.Equal(t, idsOf(once), idsOf(Filter(once, s)), "idempotence for %s", s)
			assert.True(t, isSubsequence(once, events), "order for %s", s)

			if c, ok := s.Category(); ok {
				for _, ev := range once {
					assert.Equal(t, c, ev.Category)
				}
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	events := mixedEvents()
	before := idsOf(events)
	_ = Filter(events, entity.Selector(entity.CategoryBar))
	assert.Equal(t, before, idsOf(events))
}

func TestFilterEmptyResult(t *testing.T) {
	events := []entity.Event{{ID: "a", Category: entity.CategoryBar}}
	assert.Empty(t, Filter(events, entity.Selector(entity.CategoryClub)))
}
