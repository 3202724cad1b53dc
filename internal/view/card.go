// Package view maps domain values to the view models rendered by the HTML
// pages and returned by the JSON API.
package view

import (
	"strconv"
	"strings"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/service"
)

const dateLayout = "1/2/2006"

// EventCard is everything an event card displays.
type EventCard struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	AgeRequirement string  `json:"age_requirement"`
	Rating         string  `json:"rating"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	Location       string  `json:"location"`
	Attendees      int     `json:"attendees"`
	AttendeesLabel string  `json:"attendees_label"`
	Cost           string  `json:"cost"`
	MusicGenre     string  `json:"music_genre,omitempty"`
	HostName       string  `json:"host_name"`
	DressCode      *string `json:"dress_code,omitempty"`
	Drinks         *bool   `json:"drinks,omitempty"`
	// Pending lists the fields showing placeholders.
	Pending []string `json:"pending,omitempty"`
}

func NewEventCard(ev entity.Event) EventCard {
	attendees := ev.Attendees.Or(entity.PlaceholderAttendees)

	card := EventCard{
		ID:             ev.ID,
		Name:           ev.Name,
		Description:    ev.Description,
		Image:          ev.Image,
		Category:       ev.Category.String(),
		AgeRequirement: ev.AgeRequirement,
		Rating:         FormatRating(ev.Rating.Or(entity.PlaceholderRating)),
		Date:           ev.Date.Format(dateLayout),
		StartTime:      StartTime(ev.Time),
		Location:       ev.Location,
		Attendees:      attendees,
		AttendeesLabel: strconv.Itoa(attendees) + " going",
		Cost:           DisplayCost(ev.Cost),
		MusicGenre:     ev.MusicGenre,
		HostName:       ev.HostName.Or(entity.PlaceholderHostName),
		DressCode:      ev.DressCode,
		Drinks:         ev.Drinks,
	}

	if ev.Attendees.IsPending() {
		card.Pending = append(card.Pending, "attendees")
	}
	if ev.HostName.IsPending() {
		card.Pending = append(card.Pending, "host_name")
	}
	if ev.Rating.IsPending() {
		card.Pending = append(card.Pending, "rating")
	}
	return card
}

func NewEventCards(events []entity.Event) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, ev := range events {
		cards = append(cards, NewEventCard(ev))
	}
	return cards
}

// StartTime returns the first segment of a display time.
func StartTime(displayTime string) string {
	start, _, _ := strings.Cut(displayTime, service.TimeSeparator)
	return start
}

// DisplayCost shows "Free" verbatim and any other cost as given.
func DisplayCost(cost string) string {
	if cost == entity.CostFree {
		return entity.CostFree
	}
	return cost
}

// FormatRating uses the shortest decimal form: 4.5, 5, 4.75.
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
