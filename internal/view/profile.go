package view

import (
	"strings"
	"unicode"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/service"
)

const (
	fallbackInitials    = "U"
	fallbackDisplayName = "User"
	fallbackHandle      = "username"
)

type ProfileStat struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Value int    `json:"value"`
	Hint  string `json:"hint"`
	// Pending is set while the stat is not computed yet.
	Pending bool `json:"pending"`
}

type ProfileCard struct {
	State       string        `json:"state"`
	Initials    string        `json:"initials"`
	DisplayName string        `json:"display_name"`
	Handle      string        `json:"handle"`
	Email       string        `json:"email,omitempty"`
	AvatarURL   string        `json:"avatar_url,omitempty"`
	Bio         string        `json:"bio,omitempty"`
	Stats       []ProfileStat `json:"stats"`
	Upcoming    string        `json:"upcoming"`
}

// Stats are not computed yet; every value is pending.
var profileStats = []struct {
	title, icon, hint string
}{
	{"Events Attended", "calendar", "Start exploring events!"},
	{"Reviews Written", "star", "Share your experience!"},
	{"Events Created", "user", "Host your own event!"},
}

const noUpcomingEvents = "You haven't RSVP'd to any events yet. Start exploring!"

func NewProfileCard(v *service.ProfileView) ProfileCard {
	p := v.Profile
	card := ProfileCard{
		State:       string(v.State),
		Initials:    Initials(p),
		DisplayName: DisplayName(p),
		Handle:      "@" + Handle(p),
		Upcoming:    noUpcomingEvents,
	}
	if v.User != nil {
		card.Email = v.User.Email
	}
	if p != nil {
		card.AvatarURL = deref(p.AvatarURL)
		card.Bio = deref(p.Bio)
	}

	for _, s := range profileStats {
		count := entity.Pending[int]()
		card.Stats = append(card.Stats, ProfileStat{
			Title:   s.title,
			Icon:    s.icon,
			Value:   count.Or(0),
			Hint:    s.hint,
			Pending: count.IsPending(),
		})
	}
	return card
}

// Initials are the first two characters of the username, else the first
// letter of each word of the full name, else "U".
func Initials(p *entity.Profile) string {
	if p == nil {
		return fallbackInitials
	}
	if u := deref(p.Username); u != "" {
		runes := []rune(u)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		return strings.ToUpper(string(runes))
	}
	if name := deref(p.FullName); name != "" {
		var b strings.Builder
		for _, word := range strings.FieldsFunc(name, unicode.IsSpace) {
			b.WriteRune([]rune(word)[0])
		}
		if b.Len() > 0 {
			return strings.ToUpper(b.String())
		}
	}
	return fallbackInitials
}

func DisplayName(p *entity.Profile) string {
	if p == nil {
		return fallbackDisplayName
	}
	if name := deref(p.FullName); name != "" {
		return name
	}
	if u := deref(p.Username); u != "" {
		return u
	}
	return fallbackDisplayName
}

// Handle is the username without the "@" prefix.
func Handle(p *entity.Profile) string {
	if p == nil {
		return fallbackHandle
	}
	if u := deref(p.Username); u != "" {
		return u
	}
	return fallbackHandle
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
