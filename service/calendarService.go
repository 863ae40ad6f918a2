package service

import (
	"time"

	"github.com/joeyave/airia-site/entity"
)

type CalendarService struct {
	loc *time.Location
}

func NewCalendarService(loc *time.Location) *CalendarService {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarService{
		loc: loc,
	}
}

// Build lays out month as a grid starting on Sunday: one placeholder per
// weekday before the 1st, then a cell per day with the events of that day.
// Months outside 1..12 are normalized, so month 0 is December of year-1.
func (s *CalendarService) Build(year int, month time.Month, events []*entity.Event, today entity.Date) *entity.CalendarMonth {
	first := entity.NewDate(year, month, 1)
	daysInMonth := entity.DaysIn(first.Year, first.Month)
	last := entity.NewDate(first.Year, first.Month, daysInMonth)

	byDay := newDayIndex(events, s.loc).between(first, last)

	leading := int(first.Weekday())
	cells := make([]entity.CalendarCell, 0, leading+daysInMonth)
	for i := leading; i > 0; i-- {
		cells = append(cells, entity.CalendarCell{Date: first.AddDays(-i)})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := entity.NewDate(first.Year, first.Month, day)
		cells = append(cells, entity.CalendarCell{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        date == today,
			Events:         byDay[date],
		})
	}

	return &entity.CalendarMonth{
		Year:  first.Year,
		Month: first.Month,
		Cells: cells,
	}
}

// DayDetails returns the complete event list of date.
func (s *CalendarService) DayDetails(date entity.Date, events []*entity.Event) []*entity.Event {
	return newDayIndex(events, s.loc).on(date)
}

func (s *CalendarService) Today(now time.Time) entity.Date {
	return entity.DateOf(now.In(s.loc))
}
