package entity

import (
	"strings"
	"time"
)

const (
	EventTypeLive      = "live"
	EventTypeStreet    = "street"
	EventTypeStreaming = "streaming"
)

const (
	EventStatusUpcoming = "upcoming"
	EventStatusPast     = "past"
)

// Event is a dated record of events.json or of the liveEvents list of content.json.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status,omitempty"`
	TicketURL   string `json:"ticketUrl,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

// StartTime parses Date in loc. A date-only value is combined with Time when
// Time holds a clock time such as "18:30".
func (e *Event) StartTime(loc *time.Location) (time.Time, error) {
	t, err := ParseDateTime(e.Date, loc)
	if err != nil {
		return time.Time{}, err
	}

	if e.HasClockInDate() {
		return t, nil
	}

	if clock, err := time.Parse("15:04", clockPrefix(e.Time)); err == nil {
		t = time.Date(t.Year(), t.Month(), t.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	}
	return t, nil
}

func (e *Event) Day(loc *time.Location) (Date, bool) {
	t, err := e.StartTime(loc)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

func (e *Event) HasClockInDate() bool {
	return strings.ContainsAny(strings.TrimSpace(e.Date), "T ") || strings.Contains(e.Date, ":")
}

func (e *Event) TypeOrDefault() string {
	if e.Type == "" {
		return "default"
	}
	return e.Type
}

// clockPrefix keeps the leading "HH:MM" of values like "18:30 開演".
func clockPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 {
		return strings.TrimSpace(s[:5])
	}
	return s
}
