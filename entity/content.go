package entity

import "time"

type Category string

const (
	CategoryMembers Category = "members"
	CategoryEvents  Category = "events"
	CategoryNews    Category = "news"
	CategorySongs   Category = "songs"
	CategorySocial  Category = "social"
)

var Categories = []Category{CategoryMembers, CategoryEvents, CategoryNews, CategorySongs, CategorySocial}

type LineAccount struct {
	AddFriendURL string `json:"addFriendUrl,omitempty"`
	LineID       string `json:"lineId,omitempty"`
	QRCodeImage  string `json:"qrCodeImage,omitempty"`
}

type SiteSettings struct {
	LineOfficialAccount *LineAccount `json:"lineOfficialAccount,omitempty"`
}

// Content is the document stored in content.json.
type Content struct {
	News         []*News       `json:"news"`
	Members      []*Member     `json:"members"`
	Songs        []*Song       `json:"songs"`
	LiveEvents   []*Event      `json:"liveEvents"`
	SiteSettings *SiteSettings `json:"siteSettings,omitempty"`
}

// Catalog is every category fetched for the site. Errors holds the failure of
// a category; the other categories stay usable.
type Catalog struct {
	Members  []*Member
	Events   []*Event
	News     []*News
	Songs    []*Song
	Social   SocialLinks
	Settings *SiteSettings

	Errors   map[Category]error
	LoadedAt time.Time
}

func (c *Catalog) Err(category Category) error {
	if c == nil || c.Errors == nil {
		return nil
	}
	return c.Errors[category]
}

// WithEvents returns a copy of c whose events are replaced wholesale.
func (c *Catalog) WithEvents(events []*Event, err error) *Catalog {
	cp := *c
	cp.Events = events
	cp.Errors = make(map[Category]error, len(c.Errors))
	for k, v := range c.Errors {
		cp.Errors[k] = v
	}
	if err != nil {
		cp.Errors[CategoryEvents] = err
	} else {
		delete(cp.Errors, CategoryEvents)
	}
	return &cp
}
