package entity

import (
	"fmt"
	"strings"
)

// Category is the closed classification of an event. Values outside the
// declared constants never leave ParseCategory.
type Category string

const (
	CategoryParty Category = "party"
	CategoryBar   Category = "bar"
	CategoryClub  Category = "club"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryParty, CategoryBar, CategoryClub}

func ParseCategory(raw string) (Category, error) {
	switch c := Category(strings.TrimSpace(raw)); c {
	case CategoryParty, CategoryBar, CategoryClub:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

func (c Category) String() string {
	return string(c)
}

// Selector is the active listing filter: a category or the "all" wildcard.
type Selector string

const SelectorAll Selector = "all"

// Selectors lists the filter bar entries in display order.
var Selectors = []Selector{SelectorAll, Selector(CategoryParty), Selector(CategoryBar), Selector(CategoryClub)}

// ParseSelector treats the empty string as SelectorAll.
func ParseSelector(raw string) (Selector, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(SelectorAll) {
		return SelectorAll, nil
	}
	c, err := ParseCategory(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownSelector, raw)
	}
	return Selector(c), nil
}

// Category reports the category the selector narrows to; false for SelectorAll.
func (s Selector) Category() (Category, bool) {
	if s == SelectorAll {
		return "", false
	}
	return Category(s), true
}

func (s Selector) Matches(c Category) bool {
	return s == SelectorAll || Category(s) == c
}

func (s Selector) String() string {
	return string(s)
}
