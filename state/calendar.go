package state

import (
	"time"

	"github.com/joeyave/airia-site/entity"
)

// CalendarCursor is the month shown by the calendar page and the selected
// day, if any.
type CalendarCursor struct {
	Year     int
	Month    time.Month
	Selected *entity.Date
}

func NewCalendarCursor(today entity.Date) *CalendarCursor {
	return &CalendarCursor{Year: today.Year, Month: today.Month}
}

func (c *CalendarCursor) Prev() {
	c.move(-1)
}

func (c *CalendarCursor) Next() {
	c.move(1)
}

// Today shows the current month with today selected.
func (c *CalendarCursor) Today(today entity.Date) {
	c.Year, c.Month = today.Year, today.Month
	c.Selected = &today
}

// Set jumps to year/month; out of range months roll over.
func (c *CalendarCursor) Set(year int, month time.Month) {
	first := entity.NewDate(year, month, 1)
	c.Year, c.Month = first.Year, first.Month
	c.Selected = nil
}

// Select picks a day of the displayed month. Other days are ignored.
func (c *CalendarCursor) Select(date entity.Date) bool {
	if date.Year != c.Year || date.Month != c.Month {
		return false
	}
	c.Selected = &date
	return true
}

func (c *CalendarCursor) ClearSelection() {
	c.Selected = nil
}

func (c *CalendarCursor) move(months int) {
	first := entity.NewDate(c.Year, c.Month+time.Month(months), 1)
	c.Year, c.Month = first.Year, first.Month
	c.Selected = nil
}

// PrevMonth and NextMonth are the neighbours of the displayed month.
func (c *CalendarCursor) PrevMonth() (int, time.Month) {
	d := entity.NewDate(c.Year, c.Month-1, 1)
	return d.Year, d.Month
}

func (c *CalendarCursor) NextMonth() (int, time.Month) {
	d := entity.NewDate(c.Year, c.Month+1, 1)
	return d.Year, d.Month
}
