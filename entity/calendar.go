package entity

import (
	"time"

	"github.com/joeyave/airia-site/util"
)

// CalendarIndicatorLimit is how many events a day cell shows before "+N".
const CalendarIndicatorLimit = 3

// CalendarCell is one slot of a month grid. Leading placeholders have
// IsCurrentMonth unset and carry the date of the previous month they stand for.
type CalendarCell struct {
	Date           Date
	IsCurrentMonth bool
	IsToday        bool
	Events         []*Event
}

func (c CalendarCell) HasEvents() bool {
	return len(c.Events) > 0
}

func (c CalendarCell) VisibleEvents() []*Event {
	if len(c.Events) <= CalendarIndicatorLimit {
		return c.Events
	}
	return c.Events[:CalendarIndicatorLimit]
}

func (c CalendarCell) MoreCount() int {
	if len(c.Events) <= CalendarIndicatorLimit {
		return 0
	}
	return len(c.Events) - CalendarIndicatorLimit
}

// CalendarMonth is rebuilt wholesale whenever the displayed month changes.
type CalendarMonth struct {
	Year  int
	Month time.Month
	Cells []CalendarCell
}

// Cell returns the cell of the given day of the month.
func (m *CalendarMonth) Cell(day int) (CalendarCell, bool) {
	for _, cell := range m.Cells {
		if cell.IsCurrentMonth && cell.Date.Day == day {
			return cell, true
		}
	}
	return CalendarCell{}, false
}

// Weeks splits the cells in rows of seven; the last row may be shorter.
func (m *CalendarMonth) Weeks() [][]CalendarCell {
	return util.SplitToColumns(m.Cells, 7)
}
