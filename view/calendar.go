package view

import (
	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/txt"
)

type CalendarIndicator struct {
	Type      string
	Title     string
	FullTitle string
}

type CalendarDay struct {
	Day            int
	Date           string
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	HasEvents      bool
	Indicators     []CalendarIndicator
	More           int
	URL            string
}

type CalendarView struct {
	Title          string
	WeekdayHeaders []string
	Weeks          [][]CalendarDay
	PrevURL        string
	NextURL        string
	TodayURL       string
	Details        *DayDetails
	Upcoming       []EventCard
}

// CalendarView maps a month grid. Placeholder cells keep their date but show
// no day number.
func (m *Mapper) CalendarView(grid *entity.CalendarMonth, selected *entity.Date) CalendarView {
	v := CalendarView{
		Title:          CalendarTitle(grid.Year, grid.Month, m.Lang),
		WeekdayHeaders: WeekdayHeaders(m.Lang),
		TodayURL:       m.Paths.CalendarToday(),
	}

	prev := entity.NewDate(grid.Year, grid.Month-1, 1)
	if m.Paths.HasMonth(prev.Year, prev.Month) {
		v.PrevURL = m.Paths.CalendarMonth(prev.Year, prev.Month)
	}
	next := entity.NewDate(grid.Year, grid.Month+1, 1)
	if m.Paths.HasMonth(next.Year, next.Month) {
		v.NextURL = m.Paths.CalendarMonth(next.Year, next.Month)
	}

	for _, week := range grid.Weeks() {
		days := make([]CalendarDay, 0, len(week))
		for _, cell := range week {
			days = append(days, m.calendarDay(cell, selected))
		}
		v.Weeks = append(v.Weeks, days)
	}
	return v
}

func (m *Mapper) calendarDay(cell entity.CalendarCell, selected *entity.Date) CalendarDay {
	day := CalendarDay{
		Date:           cell.Date.String(),
		IsCurrentMonth: cell.IsCurrentMonth,
	}
	if !cell.IsCurrentMonth {
		return day
	}

	day.Day = cell.Date.Day
	day.IsToday = cell.IsToday
	day.IsSelected = selected != nil && *selected == cell.Date
	day.HasEvents = cell.HasEvents()
	day.More = cell.MoreCount()
	// Static builds only export pages for days that have events.
	if day.HasEvents || !m.Paths.Static {
		day.URL = m.Paths.CalendarDay(cell.Date)
	}
	for _, event := range cell.VisibleEvents() {
		day.Indicators = append(day.Indicators, CalendarIndicator{
			Type:      event.TypeOrDefault(),
			Title:     Excerpt(event.Title, helpers.CalendarTitleLength),
			FullTitle: event.Title,
		})
	}
	return day
}

type DayEvent struct {
	ID          string
	Type        string
	Time        string
	Title       string
	Venue       string
	Description string
	TicketURL   string
	URL         string
}

type DayDetails struct {
	Date   string
	Title  string
	Events []DayEvent
}

// DayDetails lists every event of date; Events is empty on a day without any.
func (m *Mapper) DayDetails(date entity.Date, events []*entity.Event) *DayDetails {
	formatted := FormatLongDate(date.Time(m.Loc), m.Lang)

	details := &DayDetails{
		Date:  formatted,
		Title: formatted,
	}
	if len(events) > 0 {
		details.Title = txt.Get("calendar.dayTitle", m.Lang, formatted)
	}

	for _, event := range events {
		t := event.Time
		if t == "" {
			t = txt.Get("text.timeTBD", m.Lang)
		}
		details.Events = append(details.Events, DayEvent{
			ID:          event.ID,
			Type:        event.TypeOrDefault(),
			Time:        t,
			Title:       event.Title,
			Venue:       event.Venue,
			Description: event.Description,
			TicketURL:   event.TicketURL,
			URL:         m.Paths.LiveItem(event.ID),
		})
	}
	return details
}
