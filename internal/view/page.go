package view

import "github.com/ajiang05/vibeCheck/internal/entity"

type HeroAction struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Primary bool   `json:"primary"`
}

type Hero struct {
	Badge   string       `json:"badge"`
	Title   string       `json:"title"`
	Tagline string       `json:"tagline"`
	Actions []HeroAction `json:"actions"`
}

// NewHero builds the landing header. Signed-out visitors only get the
// sign-in call to action.
func NewHero(authenticated bool) Hero {
	h := Hero{
		Badge:   "Discover Tonight's Hottest Events",
		Title:   "Find Your Vibe",
		Tagline: "Discover the best parties, bars, and clubs near you. Rate, review, and connect with the nightlife community.",
	}
	if authenticated {
		h.Actions = []HeroAction{
			{Label: "Explore Now", Href: "#trending", Primary: true},
			{Label: "See Map View", Href: PathMap},
		}
	} else {
		h.Actions = []HeroAction{
			{Label: "Sign In to Explore", Href: PathAuth, Primary: true},
		}
	}
	return h
}

type FilterButton struct {
	Label    string `json:"label"`
	Selector string `json:"selector"`
	Active   bool   `json:"active"`
}

var filterLabels = map[entity.Selector]string{
	entity.SelectorAll:                    "All Events",
	entity.Selector(entity.CategoryParty): "🎉 Parties",
	entity.Selector(entity.CategoryBar):   "🍺 Bars",
	entity.Selector(entity.CategoryClub):  "💃 Clubs",
}

func FilterBar(active entity.Selector) []FilterButton {
	buttons := make([]FilterButton, 0, len(entity.Selectors))
	for _, s := range entity.Selectors {
		buttons = append(buttons, FilterButton{
			Label:    filterLabels[s],
			Selector: s.String(),
			Active:   s == active,
		})
	}
	return buttons
}

// IndexPage is the landing page model.
type IndexPage struct {
	Hero    Hero           `json:"hero"`
	Filters []FilterButton `json:"filters"`
	Cards   []EventCard    `json:"cards"`
	Nav     []NavItem      `json:"nav"`
}

func NewIndexPage(authenticated bool, selector entity.Selector, events []entity.Event) IndexPage {
	return IndexPage{
		Hero:    NewHero(authenticated),
		Filters: FilterBar(selector),
		Cards:   NewEventCards(events),
		Nav:     Navigation(PathDiscover),
	}
}
