package view

// NavItem is one destination of the bottom navigation bar.
type NavItem struct {
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

const (
	PathDiscover = "/"
	PathSearch   = "/search"
	PathMap      = "/map"
	PathProfile  = "/profile"
	PathAuth     = "/auth"
)

var navDestinations = []NavItem{
	{Label: "Discover", Icon: "home", Path: PathDiscover},
	{Label: "Search", Icon: "search", Path: PathSearch},
	{Label: "Map", Icon: "map", Path: PathMap},
	{Label: "Profile", Icon: "user", Path: PathProfile},
}

// Navigation returns the four destinations in order, marking the one whose
// path equals currentPath exactly. At most one item is active.
func Navigation(currentPath string) []NavItem {
	items := make([]NavItem, len(navDestinations))
	copy(items, navDestinations)
	for i := range items {
		items[i].Active = items[i].Path == currentPath
	}
	return items
}
