package view

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/repository"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/templates"
	"github.com/joeyave/airia-site/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*3600)

type staticCatalog struct {
	catalog *entity.Catalog
}

func (s staticCatalog) Catalog() *entity.Catalog { return s.catalog }

func testCatalog() *entity.Catalog {
	return &entity.Catalog{
		Events: []*entity.Event{
			{ID: "past", Title: "Spring one-man", Date: "2024-03-05", Time: "18:00", Type: entity.EventTypeLive, TicketURL: "https://t.example/past"},
			{ID: "street", Title: "Shibuya street live", Date: "2024-06-20", Time: "17:00", Type: entity.EventTypeStreet, Venue: "Shibuya"},
			{ID: "summer", Title: "Summer live", Date: "2024-07-01", Time: "19:00", Type: entity.EventTypeLive, TicketURL: "https://t.example/summer"},
		},
		News: []*entity.News{
			{ID: "n1", Title: "New single", Category: entity.NewsCategoryRelease, PublishDate: "2024-05-01", Content: "Out now\n\n**Stream** it"},
			{ID: "n2", Title: "Summer live", Category: entity.NewsCategoryLive, PublishDate: "2024-05-20", Content: "Tickets on sale"},
		},
		Members: []*entity.Member{
			{ID: "yui", Name: "ユイ", NameEn: "Yui", Bio: "Vocal", SocialLinks: entity.SocialLinks{{Platform: "x", URL: "https://x.com/yui"}}},
			{ID: "rina", Name: "リナ", DisplayName: "RINA", Bio: "Guitar"},
		},
		Songs: []*entity.Song{
			{ID: "blue", Title: "Blue", ReleaseDate: "2024-04-01", PreviewURL: "/audio/blue.mp3"},
			{ID: "red", Title: "Red", ReleaseDate: "2023-10-01"},
		},
		Social: entity.SocialLinks{{Platform: "instagram", URL: "https://instagram.com/airia"}},
		Settings: &entity.SiteSettings{
			LineOfficialAccount: &entity.LineAccount{LineID: "@airia", AddFriendURL: "https://line.me/R/ti/p/@airia"},
		},
		Errors: map[entity.Category]error{},
	}
}

func newTestPages(static bool) *Pages {
	return &Pages{
		Site:            staticCatalog{catalog: testCatalog()},
		EventService:    service.NewEventService(tokyo),
		CalendarService: service.NewCalendarService(tokyo),
		NewsService:     service.NewNewsService(tokyo),
		SongService:     service.NewSongService(tokyo),
		MemberService:   service.NewMemberService(),
		Mapper: &Mapper{
			Lang:    "en",
			Loc:     tokyo,
			Paths:   &Paths{Static: static},
			BaseURL: "https://airia.example",
		},
		Clock: util.NewManualClock(time.Date(2024, time.June, 15, 12, 0, 0, 0, tokyo)),
	}
}

func TestFormat(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 30, 0, 0, tokyo)

	assert.Equal(t, "2024.06.15", FormatDate(at))
	assert.Equal(t, "18:30", FormatTime(at))
	assert.Equal(t, "JUN", MonthAbbrev(time.June))
	assert.Equal(t, "Jun", MonthShort(time.June, "en"))
	assert.Equal(t, "0.3s", AnimationDelay(3, 100*time.Millisecond))
	assert.Equal(t, "0s", AnimationDelay(0, 150*time.Millisecond))
	assert.Equal(t, "abc...", Excerpt("abcdef", 3))
	assert.Equal(t, "abc", Excerpt("abc", 3))
	assert.Equal(t, "あいう...", Excerpt("あいうえお", 3))
}

func TestFormatLiveDate(t *testing.T) {
	at := time.Date(2024, time.June, 15, 18, 30, 0, 0, tokyo)

	assert.Equal(t, "2024年06月15日(土) 18:30", FormatLiveDate(at, "ja"))
	assert.Equal(t, "Sat 2024.06.15 18:30", FormatLiveDate(at, "en"))
}

func TestWeekdayHeaders(t *testing.T) {
	headers := WeekdayHeaders("en")

	require.Len(t, headers, 7)
	assert.Equal(t, "Sun", headers[0])
	assert.Equal(t, "Sat", headers[6])
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Street live", EventTypeLabel(entity.EventTypeStreet, "en"))
	assert.Equal(t, "festival", EventTypeLabel("festival", "en"))
	assert.Equal(t, "Release", NewsCategoryLabel(entity.NewsCategoryRelease, "en"))
	assert.Equal(t, "misc", NewsCategoryLabel("misc", "en"))

	assert.Equal(t, "YouTube", PlatformLabel("youtube"))
	assert.Equal(t, "mastodon", PlatformLabel("mastodon"))
	assert.Equal(t, "📷", PlatformIcon("Instagram"))
	assert.Equal(t, "🔗", PlatformIcon("mastodon"))

	assert.Equal(t, "X", MemberSocialIcon("twitter"))
	assert.Equal(t, "IG", MemberSocialIcon("instagram"))
	assert.Equal(t, "M", MemberSocialIcon("mastodon"))
	assert.Equal(t, "", MemberSocialIcon(""))
}

func TestRenderParagraphs(t *testing.T) {
	html := string(RenderParagraphs([]string{"<script>alert(1)</script>", "**Stream** it"}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "<strong>Stream</strong> it")
	assert.Equal(t, 2, strings.Count(html, "<p>"))
}

func TestShareLinks(t *testing.T) {
	links := ShareLinks("New single", "https://airia.example/news/n1.html", "en")

	require.Len(t, links, 3)
	assert.Equal(t, "https://twitter.com/intent/tweet?text=New%20single%20-%20AiRia%20Official%20Website&url=https%3A%2F%2Fairia.example%2Fnews%2Fn1.html", links[0].URL)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fairia.example%2Fnews%2Fn1.html", links[1].URL)
	assert.Equal(t, "https://line.me/R/msg/text/?New%20single%20-%20AiRia%20Official%20Website%0Ahttps%3A%2F%2Fairia.example%2Fnews%2Fn1.html", links[2].URL)
}

func TestPaths(t *testing.T) {
	dynamic := &Paths{}
	static := &Paths{Static: true}
	song := &entity.Song{ID: "blue", PreviewURL: "/audio/blue.mp3"}
	day := entity.NewDate(2024, time.March, 5)

	assert.Equal(t, "/", dynamic.Home())
	assert.Equal(t, "/index.html", static.Home())
	assert.Equal(t, "/news?category=live", dynamic.NewsCategory(entity.NewsCategoryLive))
	assert.Equal(t, "/news/category/live.html", static.NewsCategory(entity.NewsCategoryLive))
	assert.Equal(t, "/news", dynamic.NewsCategory(entity.NewsCategoryAll))
	assert.Equal(t, "/news?open=n1", dynamic.NewsOpen("n1"))
	assert.Equal(t, "/news/n1.html", static.NewsOpen("n1"))
	assert.Equal(t, "/artist?open=yui", dynamic.ArtistOpen("yui"))
	assert.Equal(t, "/member/yui.html", static.ArtistOpen("yui"))
	assert.Equal(t, "/music?play=blue", dynamic.MusicPlay(song))
	assert.Equal(t, "/audio/blue.mp3", static.MusicPlay(song))
	assert.Equal(t, "/calendar?month=3&year=2024", dynamic.CalendarMonth(2024, time.March))
	assert.Equal(t, "/calendar/2024-03.html", static.CalendarMonth(2024, time.March))
	assert.Equal(t, "/calendar?date=2024-03-05&month=3&year=2024", dynamic.CalendarDay(day))
	assert.Equal(t, "/calendar/2024-03-05.html", static.CalendarDay(day))
	assert.Equal(t, "/calendar?today=1", dynamic.CalendarToday())

	static.Months = map[string]bool{"2024-03": true}
	assert.True(t, static.HasMonth(2024, time.March))
	assert.False(t, static.HasMonth(2024, time.April))
	assert.True(t, dynamic.HasMonth(1999, time.April))
}

func TestMapper_LiveItem(t *testing.T) {
	m := newTestPages(false).Mapper

	upcoming := m.LiveItem(&entity.Event{ID: "e1", Title: "Live", Date: "2024-07-01", Time: "19:00"}, false)
	assert.Equal(t, "JUL", upcoming.Month)
	assert.Equal(t, 1, upcoming.Day)
	assert.Equal(t, 2024, upcoming.Year)
	assert.Equal(t, "19:00", upcoming.Time)
	assert.True(t, upcoming.SoldOut)
	assert.Equal(t, "default", upcoming.Type)

	past := m.LiveItem(&entity.Event{ID: "e2", Title: "Old", Date: "2023-07-01", TicketURL: "https://t.example"}, true)
	assert.Empty(t, past.TicketURL)
	assert.False(t, past.SoldOut)
}

func TestMapper_EventCard(t *testing.T) {
	m := newTestPages(false).Mapper
	event := &entity.Event{ID: "e1", Title: "Live", Date: "2024-07-01", TicketURL: "https://t.example", ExternalURL: "https://x.example"}

	upcoming := m.EventCard(event, entity.EventStatusUpcoming, 2)
	assert.Equal(t, "https://t.example", upcoming.TicketURL)
	assert.Equal(t, "https://x.example", upcoming.ExternalURL)
	assert.Equal(t, "0.2s", upcoming.Delay)

	past := m.EventCard(event, entity.EventStatusPast, 0)
	assert.Empty(t, past.TicketURL)
	assert.Empty(t, past.ExternalURL)
}

func TestMapper_NewsCard(t *testing.T) {
	m := newTestPages(false).Mapper
	long := strings.Repeat("あ", 150)

	card := m.NewsCard(&entity.News{ID: "n1", Title: "Title", Category: "release", PublishDate: "2024-05-01", Content: long})
	assert.Equal(t, "2024.05.01", card.Date)
	assert.Equal(t, strings.Repeat("あ", 120)+"...", card.Excerpt)
	assert.Equal(t, strings.Repeat("あ", 100)+"...", card.HomeExcerpt)

	card = m.NewsCard(&entity.News{ID: "n2", Content: long, Excerpt: "Short"})
	assert.Equal(t, "Short", card.HomeExcerpt)
	assert.Empty(t, card.Date)
}

func TestMapper_MemberDetail(t *testing.T) {
	m := newTestPages(false).Mapper

	card := m.MemberDetail(&entity.Member{ID: "yui", Name: "ユイ", NameEn: "Yui", SocialLinks: entity.SocialLinks{{Platform: "instagram", URL: "https://instagram.com/yui"}}})
	assert.Equal(t, "Y", card.Initial)
	require.Len(t, card.Social, 1)
	assert.Equal(t, "IG", card.Social[0].Icon)
	assert.Equal(t, "Instagram of ユイ", card.Social[0].AriaLabel)
}

func TestPages_Home(t *testing.T) {
	page := newTestPages(false).Home()
	data := page.Data.(*HomeData)

	require.Len(t, data.LatestNews, 2)
	assert.Equal(t, "n2", data.LatestNews[0].ID)
	require.NotNil(t, data.NextLive)
	assert.Equal(t, "street", data.NextLive.ID)
	assert.Len(t, data.Members, 2)
	require.Len(t, data.Events, 3)
	assert.Equal(t, entity.EventStatusUpcoming, data.Events[0].Status)
	assert.Equal(t, entity.EventStatusPast, data.Events[2].Status)
	assert.Len(t, data.Social, 1)

	assert.True(t, page.Nav[0].Active)
	assert.Equal(t, 2024, page.Year)
	assert.Equal(t, "menu.open", page.MenuLabelKey)
}

func TestPages_News(t *testing.T) {
	p := newTestPages(false)

	page := p.News(entity.NewsCategoryRelease, "")
	data := page.Data.(*NewsData)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "n1", data.Items[0].ID)
	assert.Nil(t, data.Open)
	assert.Empty(t, page.BodyOverflow)
	for _, f := range data.Filters {
		assert.Equal(t, f.Category == entity.NewsCategoryRelease, f.Active, f.Category)
	}

	page = p.News("unknown", "n1")
	data = page.Data.(*NewsData)
	assert.Len(t, data.Items, 2)
	require.NotNil(t, data.Open)
	assert.Equal(t, "n1", data.Open.ID)
	assert.Contains(t, string(data.Open.Body), "<strong>Stream</strong>")
	assert.Equal(t, "hidden", page.BodyOverflow)

	page = p.News("", "missing")
	assert.Nil(t, page.Data.(*NewsData).Open)
	assert.Empty(t, page.BodyOverflow)
}

func TestPages_Details(t *testing.T) {
	p := newTestPages(false)

	page, err := p.NewsItem("n2")
	require.NoError(t, err)
	assert.Equal(t, "Summer live", page.Title)

	_, err = p.NewsItem("missing")
	assert.ErrorIs(t, err, service.ErrNotFound)

	page, err = p.LiveItem("past")
	require.NoError(t, err)
	assert.True(t, page.Data.(*LiveItem).IsPast)

	page, err = p.Member("rina")
	require.NoError(t, err)
	assert.Equal(t, "RINA", page.Data.(*MemberCard).NameEn)

	_, err = p.Member("nobody")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPages_Live(t *testing.T) {
	data := newTestPages(false).Live().Data.(*LiveData)

	require.Len(t, data.Upcoming, 2)
	assert.Equal(t, "street", data.Upcoming[0].ID)
	assert.Equal(t, "summer", data.Upcoming[1].ID)
	require.Len(t, data.Past, 1)
	assert.Equal(t, "past", data.Past[0].ID)
}

func TestPages_Artist(t *testing.T) {
	p := newTestPages(false)

	page := p.Artist("yui")
	data := page.Data.(*ArtistData)
	require.NotNil(t, data.Open)
	assert.Equal(t, "yui", data.Open.ID)
	assert.Len(t, data.Open.Social, 1)
	assert.Equal(t, "hidden", page.BodyOverflow)

	page = p.Artist("nobody")
	assert.Nil(t, page.Data.(*ArtistData).Open)
}

func TestPages_Music(t *testing.T) {
	p := newTestPages(false)

	data := p.Music("").Data.(*MusicData)
	assert.False(t, data.Player.Visible)
	require.Len(t, data.Songs, 2)
	assert.Equal(t, "blue", data.Songs[0].ID)

	data = p.Music("blue").Data.(*MusicData)
	assert.True(t, data.Player.Visible)
	assert.Equal(t, "/audio/blue.mp3", data.Player.Source)
	assert.Equal(t, "Blue", data.Player.Title)
	assert.True(t, data.Songs[0].Playing)
	assert.False(t, data.Songs[1].Playing)

	data = p.Music("missing").Data.(*MusicData)
	assert.False(t, data.Player.Visible)
}

func TestPages_Calendar(t *testing.T) {
	p := newTestPages(false)

	data := p.Calendar(CalendarQuery{}).Data.(*CalendarView)
	assert.Equal(t, "June 2024", data.Title)
	assert.Nil(t, data.Details)
	assert.Len(t, data.Upcoming, 2)
	assert.Equal(t, "/calendar?month=5&year=2024", data.PrevURL)
	assert.Equal(t, "/calendar?month=7&year=2024", data.NextURL)

	data = p.Calendar(CalendarQuery{Date: "2024-03-05"}).Data.(*CalendarView)
	assert.Equal(t, "March 2024", data.Title)
	require.NotNil(t, data.Details)
	require.Len(t, data.Details.Events, 1)
	assert.Equal(t, "past", data.Details.Events[0].ID)
	assert.Equal(t, "18:00", data.Details.Events[0].Time)

	var selected []string
	for _, week := range data.Weeks {
		for _, day := range week {
			if day.IsSelected {
				selected = append(selected, day.Date)
			}
		}
	}
	assert.Equal(t, []string{"2024-03-05"}, selected)

	data = p.Calendar(CalendarQuery{Year: 2024, Month: 3, Today: true}).Data.(*CalendarView)
	assert.Equal(t, "June 2024", data.Title)
	require.NotNil(t, data.Details)
	assert.Empty(t, data.Details.Events)

	data = p.Calendar(CalendarQuery{Year: 2024, Month: 13}).Data.(*CalendarView)
	assert.Equal(t, "January 2025", data.Title)
}

func TestPages_Calendar_DayURLs(t *testing.T) {
	dayURLs := func(p *Pages) map[string]string {
		urls := map[string]string{}
		data := p.Calendar(CalendarQuery{Year: 2024, Month: 3}).Data.(*CalendarView)
		for _, week := range data.Weeks {
			for _, day := range week {
				if day.IsCurrentMonth {
					urls[day.Date] = day.URL
				}
			}
		}
		return urls
	}

	dynamic := dayURLs(newTestPages(false))
	assert.Len(t, dynamic, 31)
	assert.Equal(t, "/calendar?date=2024-03-06&month=3&year=2024", dynamic["2024-03-06"])

	static := dayURLs(newTestPages(true))
	assert.Len(t, static, 31)
	assert.Equal(t, "/calendar/2024-03-05.html", static["2024-03-05"])
	for date, u := range static {
		if date != "2024-03-05" {
			assert.Empty(t, u, date)
		}
	}
}

func TestPages_NotFound(t *testing.T) {
	page := newTestPages(false).NotFound("/news/n3", "n1", "/news?open=n1")
	data := page.Data.(*NotFoundData)

	assert.Equal(t, "Did you mean: n1", data.Suggestion)
	assert.Equal(t, "/news?open=n1", data.SuggestionURL)
}

func TestTemplates_RenderEveryPage(t *testing.T) {
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	p := newTestPages(false)
	newsItem, err := p.NewsItem("n1")
	require.NoError(t, err)
	liveItem, err := p.LiveItem("summer")
	require.NoError(t, err)
	member, err := p.Member("yui")
	require.NoError(t, err)

	cases := []struct {
		page *Page
		want string
	}{
		{p.Home(), `id="latest-news"`},
		{p.News("", "n1"), `id="news-modal"`},
		{newsItem, "<strong>Stream</strong>"},
		{p.Live(), `id="upcoming-lives"`},
		{liveItem, "Summer live"},
		{p.Artist("yui"), `id="member-modal"`},
		{member, "Vocal"},
		{p.Music("blue"), `id="audio-player"`},
		{p.Contact(), "@airia"},
		{p.Calendar(CalendarQuery{Date: "2024-06-20"}), `id="calendarEventDetails"`},
		{p.NotFound("/x", "", ""), "404"},
		{p.Error("/x"), "500"},
	}
	for _, c := range cases {
		t.Run(c.page.Template, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, c.page.Template, c.page))
			assert.Contains(t, buf.String(), c.want)
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestTemplates_EmptyCatalog(t *testing.T) {
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	p := newTestPages(false)
	p.Site = staticCatalog{catalog: &entity.Catalog{}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "home.go.html", p.Home()))
	assert.Contains(t, buf.String(), "There is no news at the moment.")
}

func TestExporter_Export(t *testing.T) {
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	content := repository.NewFileContentRepository(fstest.MapFS{
		"events.json": {Data: []byte(`{"events": []}`)},
	})
	e := &Exporter{Pages: newTestPages(true), Templates: tmpl, Content: content}
	out := t.TempDir()

	n, err := e.Export(context.Background(), out)
	require.NoError(t, err)

	for _, file := range []string{
		"index.html",
		"news.html",
		"news/category/release.html",
		"news/n1.html",
		"live/summer.html",
		"member/yui.html",
		"calendar.html",
		"calendar/2024-03.html",
		"calendar/2024-07.html",
		"calendar/2024-03-05.html",
		"404.html",
		"data/events.json",
	} {
		assert.FileExists(t, filepath.Join(out, file))
	}
	assert.NoFileExists(t, filepath.Join(out, "calendar/2024-02.html"))
	assert.NoFileExists(t, filepath.Join(out, "data/content.json"))

	copied, err := os.ReadFile(filepath.Join(out, "data/events.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"events": []}`, string(copied))

	// 8 pages, 3 categories, 2 news, 3 lives, 2 members, 5 months, 3 days, 1 data file.
	assert.Equal(t, 27, n)

	b, err := os.ReadFile(filepath.Join(out, "calendar/2024-03.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `href="/calendar/2024-04.html"`)
	assert.NotContains(t, string(b), `href="/calendar/2024-02.html"`)
}

func TestExporter_CalendarLinksResolve(t *testing.T) {
	tmpl, err := templates.Parse()
	require.NoError(t, err)

	e := &Exporter{Pages: newTestPages(true), Templates: tmpl}
	out := t.TempDir()

	_, err = e.Export(context.Background(), out)
	require.NoError(t, err)

	pages, err := filepath.Glob(filepath.Join(out, "calendar", "*.html"))
	require.NoError(t, err)
	pages = append(pages, filepath.Join(out, "calendar.html"))

	href := regexp.MustCompile(`href="(/calendar[^"]*)"`)
	var dayLinks int
	for _, page := range pages {
		b, err := os.ReadFile(page)
		require.NoError(t, err)
		for _, m := range href.FindAllStringSubmatch(string(b), -1) {
			assert.FileExists(t, filepath.Join(out, filepath.FromSlash(m[1])), "linked from %s", page)
			if strings.Count(m[1], "-") == 2 {
				dayLinks++
			}
		}
	}
	assert.Positive(t, dayLinks)

	b, err := os.ReadFile(filepath.Join(out, "calendar/2024-03.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `href="/calendar/2024-03-05.html"`)
	assert.NotContains(t, string(b), `href="/calendar/2024-03-06.html"`)
	assert.Contains(t, string(b), `data-date="2024-03-06"`)
}

func TestExporter_RequiresStaticPaths(t *testing.T) {
	e := &Exporter{Pages: newTestPages(false)}

	_, err := e.Export(context.Background(), t.TempDir())
	assert.Error(t, err)
}
