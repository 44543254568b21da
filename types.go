package weddingnanny

import (
	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/dashboard"
)

// CityLink is one entry of the public city navigation.
type CityLink struct {
	ID   string
	Name string
	URL  string
}

// CityView is everything a public city page template needs.
type CityView struct {
	Page      content.CityPage
	Global    content.GlobalConfig
	Cities    []CityLink
	SiteURL   string
	Canonical string // canonical + og:url
}

// AdminView is everything the admin console template needs.
type AdminView struct {
	State       content.State
	CityIDs     []string
	Stats       dashboard.Stats
	Calendar    dashboard.Month
	Images      []Image
	CSRFToken   string
	Message     string
	LoadWarning string // set when saved content could not be loaded
}
