package view

import (
	"html/template"
	"strings"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/txt"
)

// Mapper turns records into the view models the templates render. It does no
// I/O; the same record always maps to the same view model.
type Mapper struct {
	Lang    string
	Loc     *time.Location
	Paths   *Paths
	BaseURL string
}

type EventCard struct {
	ID          string
	Title       string
	Type        string
	TypeLabel   string
	Status      string
	Day         int
	Month       string
	Time        string
	Venue       string
	Description string
	TicketURL   string
	ExternalURL string
	URL         string
	Delay       string
}

// EventCard maps an event of the home events section. Ticket and external
// links are only offered for upcoming events.
func (m *Mapper) EventCard(event *entity.Event, status string, index int) EventCard {
	card := EventCard{
		ID:          event.ID,
		Title:       event.Title,
		Type:        event.TypeOrDefault(),
		TypeLabel:   EventTypeLabel(event.Type, m.Lang),
		Status:      status,
		Time:        event.Time,
		Venue:       event.Venue,
		Description: event.Description,
		URL:         m.Paths.LiveItem(event.ID),
		Delay:       AnimationDelay(index, helpers.AnimationDelayStep),
	}
	if start, err := event.StartTime(m.Loc); err == nil {
		card.Day = start.Day()
		card.Month = MonthShort(start.Month(), m.Lang)
	}
	if status == entity.EventStatusUpcoming {
		card.TicketURL = event.TicketURL
		card.ExternalURL = event.ExternalURL
	}
	return card
}

type LiveItem struct {
	ID          string
	Title       string
	Month       string
	Day         int
	Year        int
	Date        string
	LongDate    string
	Time        string
	Venue       string
	Description string
	Type        string
	TypeLabel   string
	TicketURL   string
	ExternalURL string
	IsPast      bool
	SoldOut     bool
	URL         string
}

func (m *Mapper) LiveItem(event *entity.Event, isPast bool) LiveItem {
	item := LiveItem{
		ID:          event.ID,
		Title:       event.Title,
		Venue:       event.Venue,
		Description: event.Description,
		Type:        event.TypeOrDefault(),
		TypeLabel:   EventTypeLabel(event.Type, m.Lang),
		ExternalURL: event.ExternalURL,
		IsPast:      isPast,
		URL:         m.Paths.LiveItem(event.ID),
	}

	if start, err := event.StartTime(m.Loc); err == nil {
		item.Month = MonthAbbrev(start.Month())
		item.Day = start.Day()
		item.Year = start.Year()
		item.Time = FormatTime(start)
		item.Date = FormatLiveDate(start, m.Lang)
		item.LongDate = FormatLongDate(start, m.Lang)
	}

	if !isPast {
		item.TicketURL = event.TicketURL
		item.SoldOut = event.TicketURL == ""
	}
	return item
}

type NewsCard struct {
	ID            string
	Title         string
	Category      string
	CategoryLabel string
	Date          string
	Excerpt       string
	HomeExcerpt   string
	FeaturedImage string
	URL           string
	OpenURL       string
}

func (m *Mapper) NewsCard(news *entity.News) NewsCard {
	card := NewsCard{
		ID:            news.ID,
		Title:         news.Title,
		Category:      news.Category,
		CategoryLabel: NewsCategoryLabel(news.Category, m.Lang),
		Excerpt:       Excerpt(news.Content, helpers.NewsExcerptLength),
		HomeExcerpt:   news.Excerpt,
		FeaturedImage: news.FeaturedImage,
		URL:           m.Paths.NewsItem(news.ID),
		OpenURL:       m.Paths.NewsOpen(news.ID),
	}
	if card.HomeExcerpt == "" {
		card.HomeExcerpt = Excerpt(news.Content, helpers.HomeExcerptLength)
	}
	if t, err := news.PublishedAt(m.Loc); err == nil {
		card.Date = FormatDate(t)
	}
	return card
}

type NewsDetail struct {
	NewsCard
	Body   template.HTML
	Shares []ShareLink
}

func (m *Mapper) NewsDetail(news *entity.News) NewsDetail {
	link := strings.TrimRight(m.BaseURL, "/") + m.Paths.NewsItem(news.ID)
	return NewsDetail{
		NewsCard: m.NewsCard(news),
		Body:     RenderParagraphs(news.Paragraphs()),
		Shares:   ShareLinks(news.Title, link, m.Lang),
	}
}

type SocialLink struct {
	Platform  string
	Label     string
	Icon      string
	URL       string
	AriaLabel string
}

type MemberCard struct {
	ID           string
	Name         string
	NameEn       string
	Initial      string
	Bio          string
	ProfileImage string
	URL          string
	OpenURL      string
	Social       []SocialLink
}

func (m *Mapper) MemberCard(member *entity.Member) MemberCard {
	return MemberCard{
		ID:           member.ID,
		Name:         member.Name,
		NameEn:       member.LatinName(),
		Initial:      member.Initial(),
		Bio:          member.Bio,
		ProfileImage: member.ProfileImage,
		URL:          m.Paths.Member(member.ID),
		OpenURL:      m.Paths.ArtistOpen(member.ID),
	}
}

// MemberDetail adds the member's social links to the card.
func (m *Mapper) MemberDetail(member *entity.Member) MemberCard {
	card := m.MemberCard(member)
	for _, link := range member.SocialLinks {
		card.Social = append(card.Social, SocialLink{
			Platform:  link.Platform,
			Label:     PlatformLabel(link.Platform),
			Icon:      MemberSocialIcon(link.Platform),
			URL:       link.URL,
			AriaLabel: txt.Get("social.of", m.Lang, member.Name, PlatformLabel(link.Platform)),
		})
	}
	return card
}

type SongCard struct {
	ID             string
	Title          string
	Date           string
	CoverArt       string
	PreviewURL     string
	PlayURL        string
	Playing        bool
	StreamingLinks []SocialLink
}

func (m *Mapper) SongCard(song *entity.Song) SongCard {
	card := SongCard{
		ID:         song.ID,
		Title:      song.Title,
		CoverArt:   song.CoverArt,
		PreviewURL: song.PreviewURL,
		PlayURL:    m.Paths.MusicPlay(song),
	}
	if t, err := song.ReleasedAt(m.Loc); err == nil {
		card.Date = FormatDate(t)
	}
	for _, link := range song.StreamingLinks {
		card.StreamingLinks = append(card.StreamingLinks, SocialLink{
			Platform: link.Platform,
			Label:    link.Platform,
			URL:      link.URL,
		})
	}
	return card
}

type SocialItem struct {
	SocialLink
	Delay string
}

func (m *Mapper) SocialItem(link entity.SocialLink, index int) SocialItem {
	label := PlatformLabel(link.Platform)
	return SocialItem{
		SocialLink: SocialLink{
			Platform:  link.Platform,
			Label:     label,
			Icon:      PlatformIcon(link.Platform),
			URL:       link.URL,
			AriaLabel: label,
		},
		Delay: AnimationDelay(index, helpers.SocialAnimationDelay),
	}
}
