package view

import (
	"time"

	"github.com/joeyave/airia-site/state"
)

// Page is what every template receives. Data holds the page specific view
// model.
type Page struct {
	Template     string
	Lang         string
	TitleKey     string
	Title        string
	Path         string
	Nav          []NavLink
	MenuLabelKey string
	BodyOverflow string
	Year         int
	Paths        *Paths
	Data         any
}

type NavLink struct {
	Key    string
	URL    string
	Active bool
}

func navigation(paths *Paths, currentPath string) []NavLink {
	links := []NavLink{
		{Key: "nav.home", URL: paths.Home()},
		{Key: "nav.news", URL: paths.News()},
		{Key: "nav.live", URL: paths.Live()},
		{Key: "nav.artist", URL: paths.Artist()},
		{Key: "nav.music", URL: paths.Music()},
		{Key: "nav.calendar", URL: paths.Calendar()},
		{Key: "nav.contact", URL: paths.Contact()},
	}
	for i := range links {
		links[i].Active = state.ActiveLink(currentPath, links[i].URL)
	}
	return links
}

func newPage(m *Mapper, template, currentPath, titleKey string, now time.Time, data any) *Page {
	menu := state.NewMenu()
	return &Page{
		Template:     template,
		Lang:         m.Lang,
		TitleKey:     titleKey,
		Path:         currentPath,
		Nav:          navigation(m.Paths, currentPath),
		MenuLabelKey: menu.AriaLabelKey(),
		Year:         now.In(m.Loc).Year(),
		Paths:        m.Paths,
		Data:         data,
	}
}
