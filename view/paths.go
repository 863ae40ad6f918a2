package view

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/joeyave/airia-site/entity"
)

// Paths builds the links between pages. Served pages carry the UI state in
// query parameters; static pages are separate files.
type Paths struct {
	Static bool

	// Months limits calendar navigation of a static build to the months that
	// were generated. Nil allows every month.
	Months map[string]bool
}

func (p *Paths) page(name string) string {
	if name == "" {
		if p.Static {
			return "/index.html"
		}
		return "/"
	}
	if p.Static {
		return "/" + name + ".html"
	}
	return "/" + name
}

func (p *Paths) Home() string     { return p.page("") }
func (p *Paths) News() string     { return p.page("news") }
func (p *Paths) Live() string     { return p.page("live") }
func (p *Paths) Artist() string   { return p.page("artist") }
func (p *Paths) Music() string    { return p.page("music") }
func (p *Paths) Contact() string  { return p.page("contact") }
func (p *Paths) Calendar() string { return p.page("calendar") }

func (p *Paths) NewsCategory(category string) string {
	if category == "" || category == entity.NewsCategoryAll {
		return p.News()
	}
	if p.Static {
		return p.page("news/category/" + url.PathEscape(category))
	}
	return p.News() + "?category=" + url.QueryEscape(category)
}

func (p *Paths) NewsItem(ID string) string {
	return p.page("news/" + url.PathEscape(ID))
}

// NewsOpen opens a news item in the modal of the news page.
func (p *Paths) NewsOpen(ID string) string {
	if p.Static {
		return p.NewsItem(ID)
	}
	return p.News() + "?open=" + url.QueryEscape(ID)
}

func (p *Paths) LiveItem(ID string) string {
	return p.page("live/" + url.PathEscape(ID))
}

func (p *Paths) Member(ID string) string {
	return p.page("member/" + url.PathEscape(ID))
}

func (p *Paths) ArtistOpen(ID string) string {
	if p.Static {
		return p.Member(ID)
	}
	return p.Artist() + "?open=" + url.QueryEscape(ID)
}

// MusicPlay starts the preview of a song; static pages link the audio file.
func (p *Paths) MusicPlay(song *entity.Song) string {
	if p.Static {
		return song.PreviewURL
	}
	return p.Music() + "?play=" + url.QueryEscape(song.ID)
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func (p *Paths) HasMonth(year int, month time.Month) bool {
	return p.Months == nil || p.Months[monthKey(year, month)]
}

func (p *Paths) CalendarMonth(year int, month time.Month) string {
	if p.Static {
		return p.page("calendar/" + monthKey(year, month))
	}
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(int(month)))
	return p.Calendar() + "?" + q.Encode()
}

func (p *Paths) CalendarDay(date entity.Date) string {
	if p.Static {
		return p.page("calendar/" + date.String())
	}
	q := url.Values{}
	q.Set("year", strconv.Itoa(date.Year))
	q.Set("month", strconv.Itoa(int(date.Month)))
	q.Set("date", date.String())
	return p.Calendar() + "?" + q.Encode()
}

func (p *Paths) CalendarToday() string {
	if p.Static {
		return p.Calendar()
	}
	return p.Calendar() + "?today=1"
}

func (p *Paths) Data(resource string) string {
	return "/data/" + resource
}
