package service

import "github.com/ajiang05/vibeCheck/internal/entity"

// Filter returns the events matching selector in input order. SelectorAll
// returns events itself; any other selector returns a new slice.
func Filter(events []entity.Event, selector entity.Selector) []entity.Event {
	category, ok := selector.Category()
	if !ok {
		return events
	}

	filtered := make([]entity.Event, 0, len(events))
	for _, ev := range events {
		if ev.Category == category {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
