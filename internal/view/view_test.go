package view

import (
	"testing"
	"time"

	"github.com/ajiang05/vibeCheck/internal/auth"
	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedLikeEvent() entity.Event {
	return entity.Event{
		ID:             "1",
		Name:           "Neon Nights",
		Description:    "Rooftop party",
		Location:       "Skyline Terrace",
		Date:           time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC),
		Time:           "21:00 - 03:00",
		Cost:           "$20",
		AgeRequirement: "21+",
		Attendees:      entity.Known(342),
		Image:          "https://img/1.jpg",
		Category:       entity.CategoryParty,
		HostName:       entity.Known("Pulse"),
		Rating:         entity.Known(4.8),
	}
}

func TestNewEventCard(t *testing.T) {
	ev := seedLikeEvent()
	card := NewEventCard(ev)

	assert.Equal(t, "Neon Nights", card.Name)
	assert.Equal(t, "Rooftop party", card.Description)
	assert.Equal(t, "party", card.Category)
	assert.Equal(t, "21+", card.AgeRequirement)
	assert.Equal(t, "4.8", card.Rating)
	assert.Equal(t, "11/7/2026", card.Date)
	assert.Equal(t, "21:00", card.StartTime)
	assert.Equal(t, "Skyline Terrace", card.Location)
	assert.Equal(t, 342, card.Attendees)
	assert.Equal(t, "342 going", card.AttendeesLabel)
	assert.Equal(t, "$20", card.Cost)
	assert.Equal(t, "Pulse", card.HostName)
	assert.Empty(t, card.Pending)

	// the event itself is untouched
	assert.Equal(t, seedLikeEvent(), ev)
}

func TestNewEventCardPendingPlaceholders(t *testing.T) {
	ev := seedLikeEvent()
	ev.Attendees = entity.Pending[int]()
	ev.HostName = entity.Pending[string]()
	ev.Rating = entity.Pending[float64]()

	card := NewEventCard(ev)
	assert.Equal(t, "0 going", card.AttendeesLabel)
	assert.Equal(t, "4.5", card.Rating)
	assert.Equal(t, "Host", card.HostName)
	assert.Equal(t, []string{"attendees", "host_name", "rating"}, card.Pending)
}

func TestDisplayCost(t *testing.T) {
	assert.Equal(t, "Free", DisplayCost("Free"))
	assert.Equal(t, "$20", DisplayCost("$20"))
}

func TestStartTime(t *testing.T) {
	assert.Equal(t, "21:00", StartTime("21:00 - 23:00"))
	assert.Equal(t, "21:00", StartTime("21:00"))
	assert.Equal(t, "", StartTime(""))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.5", FormatRating(4.5))
	assert.Equal(t, "5", FormatRating(5))
	assert.Equal(t, "0", FormatRating(0))
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		path   string
		active string
	}{
		{path: "/", active: "Discover"},
		{path: "/search", active: "Search"},
		{path: "/map", active: "Map"},
		{path: "/profile", active: "Profile"},
		{path: "/auth", active: ""},
		{path: "/profile/", active: ""},
		{path: "/events/1", active: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			items := Navigation(tt.path)
			require.Len(t, items, 4)
			assert.Equal(t, []string{"Discover", "Search", "Map", "Profile"},
				[]string{items[0].Label, items[1].Label, items[2].Label, items[3].Label})

			activeCount := 0
			for _, item := range items {
				if item.Active {
					activeCount++
					assert.Equal(t, tt.active, item.Label)
				}
			}
			if tt.active == "" {
				assert.Zero(t, activeCount)
			} else {
				assert.Equal(t, 1, activeCount)
			}
		})
	}
}

func TestNavigationDoesNotLeakState(t *testing.T) {
	Navigation("/map")
	for _, item := range Navigation("/auth") {
		assert.False(t, item.Active)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		want    string
	}{
		{name: "no profile", profile: nil, want: "U"},
		{name: "empty profile", profile: &entity.Profile{ID: "u"}, want: "U"},
		{name: "username", profile: &entity.Profile{Username: strPtr("nightowl")}, want: "NI"},
		{name: "short username", profile: &entity.Profile{Username: strPtr("z")}, want: "Z"},
		{name: "full name", profile: &entity.Profile{FullName: strPtr("Ada Lovelace")}, want: "AL"},
		{name: "full name extra spaces", profile: &entity.Profile{FullName: strPtr(" ada  king lovelace ")}, want: "AKL"},
		{name: "blank full name", profile: &entity.Profile{FullName: strPtr("   ")}, want: "U"},
		{name: "username wins", profile: &entity.Profile{Username: strPtr("owl"), FullName: strPtr("Ada Lovelace")}, want: "OW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.profile))
		})
	}
}

func TestProfileCardWithoutProfileRow(t *testing.T) {
	session := auth.NewContext(&entity.User{ID: "user-1", Email: "ada@example.com"}, nil)
	view := service.NewProfileView(session)
	view.State = service.ProfileReady

	card := NewProfileCard(view)
	assert.Equal(t, "U", card.Initials)
	assert.Equal(t, "User", card.DisplayName)
	assert.Equal(t, "@username", card.Handle)
	assert.Equal(t, "ada@example.com", card.Email)
	assert.Empty(t, card.Bio)
	require.Len(t, card.Stats, 3)
	for _, s := range card.Stats {
		assert.Zero(t, s.Value)
		assert.True(t, s.Pending)
	}
}

func TestProfileCardWithProfile(t *testing.T) {
	view := &service.ProfileView{
		State: service.ProfileReady,
		User:  &entity.User{ID: "user-1"},
		Profile: &entity.Profile{
			ID:        "user-1",
			Username:  strPtr("nightowl"),
			FullName:  strPtr("Ada Lovelace"),
			AvatarURL: strPtr("https://img/ada.png"),
			Bio:       strPtr("Out every weekend"),
		},
	}

	card := NewProfileCard(view)
	assert.Equal(t, "NI", card.Initials)
	assert.Equal(t, "Ada Lovelace", card.DisplayName)
	assert.Equal(t, "@nightowl", card.Handle)
	assert.Equal(t, "https://img/ada.png", card.AvatarURL)
	assert.Equal(t, "Out every weekend", card.Bio)
}

func TestHero(t *testing.T) {
	signedOut := NewHero(false)
	require.Len(t, signedOut.Actions, 1)
	assert.Equal(t, PathAuth, signedOut.Actions[0].Href)

	signedIn := NewHero(true)
	require.Len(t, signedIn.Actions, 2)
	assert.Equal(t, "Explore Now", signedIn.Actions[0].Label)
}

func TestFilterBar(t *testing.T) {
	buttons := FilterBar(entity.Selector(entity.CategoryBar))
	require.Len(t, buttons, 4)
	for _, b := range buttons {
		assert.Equal(t, b.Selector == "bar", b.Active)
		assert.NotEmpty(t, b.Label)
	}
}
