package view

import (
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/state"
	"github.com/joeyave/airia-site/txt"
	"github.com/joeyave/airia-site/util"
	"github.com/rs/zerolog/log"
)

type CatalogSource interface {
	Catalog() *entity.Catalog
}

// Pages assembles every page of the site from the current catalog.
type Pages struct {
	Site            CatalogSource
	EventService    *service.EventService
	CalendarService *service.CalendarService
	NewsService     *service.NewsService
	SongService     *service.SongService
	MemberService   *service.MemberService
	Mapper          *Mapper
	Clock           util.Clock
}

func (p *Pages) now() time.Time {
	if p.Clock == nil {
		return time.Now()
	}
	return p.Clock.Now()
}

func (p *Pages) page(template, path, titleKey string, data any) *Page {
	return newPage(p.Mapper, template, path, titleKey, p.now(), data)
}

type HomeData struct {
	LatestNews []NewsCard
	NextLive   *LiveItem
	Members    []MemberCard
	Events     []EventCard
	Social     []SocialItem
}

func (p *Pages) Home() *Page {
	catalog := p.Site.Catalog()
	now := p.now()

	data := &HomeData{}
	for _, n := range p.NewsService.Latest(catalog.News, helpers.LatestNewsLimit) {
		data.LatestNews = append(data.LatestNews, p.Mapper.NewsCard(n))
	}
	if next, ok := p.EventService.Next(catalog.Events, now); ok {
		item := p.Mapper.LiveItem(next, false)
		data.NextLive = &item
	}
	for _, member := range catalog.Members {
		data.Members = append(data.Members, p.Mapper.MemberDetail(member))
	}
	for i, event := range p.EventService.SortForListing(catalog.Events, now) {
		data.Events = append(data.Events, p.Mapper.EventCard(event, p.EventService.Status(event, now), i))
	}
	for i, link := range catalog.Social {
		data.Social = append(data.Social, p.Mapper.SocialItem(link, i))
	}

	return p.page("home.go.html", p.Mapper.Paths.Home(), "site.tagline", data)
}

type FilterOption struct {
	Category string
	Label    string
	URL      string
	Active   bool
}

type NewsData struct {
	Filters []FilterOption
	Items   []NewsCard
	Open    *NewsDetail
}

// News renders the news list filtered by category. A known openID opens that
// item in the modal; an unknown one leaves the modal closed.
func (p *Pages) News(category, openID string) *Page {
	catalog := p.Site.Catalog()

	filter := state.NewFilter()
	if err := filter.Select(category); err != nil {
		log.Warn().Err(err).Msg("Ignoring news filter")
	}

	data := &NewsData{}
	for _, option := range filter.Options() {
		data.Filters = append(data.Filters, FilterOption{
			Category: option,
			Label:    NewsCategoryLabel(option, p.Mapper.Lang),
			URL:      p.Mapper.Paths.NewsCategory(option),
			Active:   filter.IsActive(option),
		})
	}
	for _, n := range p.NewsService.Filter(catalog.News, filter.Current()) {
		data.Items = append(data.Items, p.Mapper.NewsCard(n))
	}

	modal := state.NewModal(nil)
	if openID != "" {
		if n, ok := state.OpenByID(modal, catalog.News, openID, func(n *entity.News) string { return n.ID }); ok {
			detail := p.Mapper.NewsDetail(n)
			data.Open = &detail
		}
	}

	page := p.page("news.go.html", p.Mapper.Paths.News(), "nav.news", data)
	page.BodyOverflow = modal.BodyOverflow()
	return page
}

func (p *Pages) NewsItem(ID string) (*Page, error) {
	n, err := p.NewsService.FindOneByID(p.Site.Catalog().News, ID)
	if err != nil {
		return nil, err
	}

	detail := p.Mapper.NewsDetail(n)
	page := p.page("news_item.go.html", p.Mapper.Paths.News(), "nav.news", &detail)
	page.Title = n.Title
	return page, nil
}

type LiveData struct {
	Upcoming []LiveItem
	Past     []LiveItem
}

func (p *Pages) Live() *Page {
	upcoming, past := p.EventService.Bucket(p.Site.Catalog().Events, p.now())

	data := &LiveData{}
	for _, event := range upcoming {
		data.Upcoming = append(data.Upcoming, p.Mapper.LiveItem(event, false))
	}
	for _, event := range past {
		data.Past = append(data.Past, p.Mapper.LiveItem(event, true))
	}

	return p.page("live.go.html", p.Mapper.Paths.Live(), "nav.live", data)
}

func (p *Pages) LiveItem(ID string) (*Page, error) {
	event, err := p.EventService.FindOneByID(p.Site.Catalog().Events, ID)
	if err != nil {
		return nil, err
	}

	item := p.Mapper.LiveItem(event, !p.EventService.IsUpcoming(event, p.now()))
	page := p.page("live_item.go.html", p.Mapper.Paths.Live(), "nav.live", &item)
	page.Title = event.Title
	return page, nil
}

type ArtistData struct {
	Members []MemberCard
	Open    *MemberCard
}

func (p *Pages) Artist(openID string) *Page {
	members := p.Site.Catalog().Members

	data := &ArtistData{}
	for _, member := range members {
		data.Members = append(data.Members, p.Mapper.MemberCard(member))
	}

	modal := state.NewModal(nil)
	if openID != "" {
		if member, ok := state.OpenByID(modal, members, openID, func(m *entity.Member) string { return m.ID }); ok {
			detail := p.Mapper.MemberDetail(member)
			data.Open = &detail
		}
	}

	page := p.page("artist.go.html", p.Mapper.Paths.Artist(), "nav.artist", data)
	page.BodyOverflow = modal.BodyOverflow()
	return page
}

func (p *Pages) Member(ID string) (*Page, error) {
	member, err := p.MemberService.FindOneByID(p.Site.Catalog().Members, ID)
	if err != nil {
		return nil, err
	}

	detail := p.Mapper.MemberDetail(member)
	page := p.page("member.go.html", p.Mapper.Paths.Artist(), "nav.artist", &detail)
	page.Title = member.Name
	return page, nil
}

type PlayerView struct {
	Visible  bool
	Title    string
	CoverArt string
	Source   string
}

type MusicData struct {
	Songs  []SongCard
	Player PlayerView
}

// renderedAudio is the audio element of a rendered page: it only remembers
// the source to embed.
type renderedAudio struct {
	src string
}

func (a *renderedAudio) Load(src string) { a.src = src }
func (a *renderedAudio) Play() error     { return nil }
func (a *renderedAudio) Pause()          {}

func (p *Pages) Music(playID string) *Page {
	songs := p.SongService.SortByRelease(p.Site.Catalog().Songs)

	audio := &renderedAudio{}
	player := state.NewPlayer(audio, p.Clock)
	if playID != "" {
		if song, err := p.SongService.FindOneByID(songs, playID); err == nil {
			if err := player.Play(state.Track{Title: song.Title, CoverArt: song.CoverArt, PreviewURL: song.PreviewURL}); err != nil {
				log.Warn().Err(err).Str("song", song.ID).Msg("Failed to start preview")
			}
		}
	}

	data := &MusicData{}
	playing, _ := player.Track()
	for _, song := range songs {
		card := p.Mapper.SongCard(song)
		card.Playing = player.Visible() && song.ID == playID
		data.Songs = append(data.Songs, card)
	}
	if player.Visible() {
		data.Player = PlayerView{
			Visible:  true,
			Title:    playing.Title,
			CoverArt: playing.CoverArt,
			Source:   audio.src,
		}
	}

	return p.page("music.go.html", p.Mapper.Paths.Music(), "nav.music", data)
}

type ContactData struct {
	Line   *entity.LineAccount
	Social []SocialItem
}

func (p *Pages) Contact() *Page {
	catalog := p.Site.Catalog()

	data := &ContactData{}
	if catalog.Settings != nil {
		data.Line = catalog.Settings.LineOfficialAccount
	}
	for i, link := range catalog.Social {
		data.Social = append(data.Social, p.Mapper.SocialItem(link, i))
	}

	return p.page("contact.go.html", p.Mapper.Paths.Contact(), "nav.contact", data)
}

// CalendarQuery is the calendar state carried by the request.
type CalendarQuery struct {
	Year  int    `schema:"year"`
	Month int    `schema:"month"`
	Date  string `schema:"date"`
	Today bool   `schema:"today"`
}

func (p *Pages) Calendar(q CalendarQuery) *Page {
	events := p.Site.Catalog().Events
	now := p.now()
	today := p.CalendarService.Today(now)

	cursor := state.NewCalendarCursor(today)
	switch {
	case q.Today:
		cursor.Today(today)
	case q.Year > 0 && q.Month != 0:
		cursor.Set(q.Year, time.Month(q.Month))
	}
	if q.Date != "" && !q.Today {
		if date, err := entity.ParseDate(q.Date); err == nil {
			if q.Year == 0 || q.Month == 0 {
				cursor.Set(date.Year, date.Month)
			}
			cursor.Select(date)
		}
	}

	grid := p.CalendarService.Build(cursor.Year, cursor.Month, events, today)
	data := p.Mapper.CalendarView(grid, cursor.Selected)
	if cursor.Selected != nil {
		data.Details = p.Mapper.DayDetails(*cursor.Selected, p.CalendarService.DayDetails(*cursor.Selected, events))
	}
	for i, event := range p.EventService.Upcoming(events, now, helpers.UpcomingEventsLimit) {
		data.Upcoming = append(data.Upcoming, p.Mapper.EventCard(event, entity.EventStatusUpcoming, i))
	}

	return p.page("calendar.go.html", p.Mapper.Paths.Calendar(), "nav.calendar", &data)
}

type NotFoundData struct {
	Suggestion    string
	SuggestionURL string
}

// NotFound is the page of an unknown record. The closest known id, if any, is
// offered instead.
func (p *Pages) NotFound(path, suggestion, suggestionURL string) *Page {
	data := &NotFoundData{}
	if suggestion != "" {
		data.Suggestion = txt.Get("text.didYouMean", p.Mapper.Lang, suggestion)
		data.SuggestionURL = suggestionURL
	}
	return p.page("not_found.go.html", path, "text.notFound", data)
}

func (p *Pages) Error(path string) *Page {
	return p.page("error.go.html", path, "text.serverError", nil)
}
