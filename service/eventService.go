package service

import (
	"time"

	"github.com/joeyave/airia-site/entity"
	"golang.org/x/exp/slices"
)

// EventService classifies events at day granularity: an event is upcoming
// when its calendar day in the site location is today or later.
type EventService struct {
	loc *time.Location
}

func NewEventService(loc *time.Location) *EventService {
	if loc == nil {
		loc = time.Local
	}
	return &EventService{
		loc: loc,
	}
}

func (s *EventService) Location() *time.Location {
	return s.loc
}

type datedEvent struct {
	event *entity.Event
	start time.Time
	day   entity.Date
}

func (s *EventService) dated(events []*entity.Event) []datedEvent {
	dated := make([]datedEvent, 0, len(events))
	for _, event := range events {
		start, err := event.StartTime(s.loc)
		if err != nil {
			continue
		}
		dated = append(dated, datedEvent{event: event, start: start, day: entity.DateOf(start)})
	}
	return dated
}

// Bucket splits events into upcoming (soonest first) and past (most recent
// first). Both sorts are stable. Events with unparseable dates are dropped.
func (s *EventService) Bucket(events []*entity.Event, reference time.Time) (upcoming, past []*entity.Event) {
	today := entity.DateOf(reference.In(s.loc))

	var up, pa []datedEvent
	for _, d := range s.dated(events) {
		if d.day.Compare(today) >= 0 {
			up = append(up, d)
		} else {
			pa = append(pa, d)
		}
	}

	slices.SortStableFunc(up, func(a, b datedEvent) int { return a.start.Compare(b.start) })
	slices.SortStableFunc(pa, func(a, b datedEvent) int { return b.start.Compare(a.start) })

	return unwrapEvents(up), unwrapEvents(pa)
}

func (s *EventService) IsUpcoming(event *entity.Event, reference time.Time) bool {
	day, ok := event.Day(s.loc)
	if !ok {
		return false
	}
	return day.Compare(entity.DateOf(reference.In(s.loc))) >= 0
}

func (s *EventService) Status(event *entity.Event, reference time.Time) string {
	if s.IsUpcoming(event, reference) {
		return entity.EventStatusUpcoming
	}
	return entity.EventStatusPast
}

func (s *EventService) Upcoming(events []*entity.Event, reference time.Time, limit int) []*entity.Event {
	upcoming, _ := s.Bucket(events, reference)
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

func (s *EventService) Next(events []*entity.Event, reference time.Time) (*entity.Event, bool) {
	upcoming := s.Upcoming(events, reference, 1)
	if len(upcoming) == 0 {
		return nil, false
	}
	return upcoming[0], true
}

// SortForListing puts upcoming events first (soonest first), then past ones
// (most recent first).
func (s *EventService) SortForListing(events []*entity.Event, reference time.Time) []*entity.Event {
	upcoming, past := s.Bucket(events, reference)
	return append(upcoming, past...)
}

func (s *EventService) FindOneByID(events []*entity.Event, ID string) (*entity.Event, error) {
	i := slices.IndexFunc(events, func(e *entity.Event) bool { return e.ID == ID })
	if i < 0 {
		return nil, ErrNotFound
	}
	return events[i], nil
}

// FindByDate returns every event of the day in input order.
func (s *EventService) FindByDate(events []*entity.Event, date entity.Date) []*entity.Event {
	return newDayIndex(events, s.loc).on(date)
}

// FindBetweenDates returns the events of [from, to] sorted by start time.
func (s *EventService) FindBetweenDates(events []*entity.Event, from, to entity.Date) []*entity.Event {
	var found []*entity.Event
	for _, dayEvents := range newDayIndex(events, s.loc).between(from, to) {
		found = append(found, dayEvents...)
	}

	dated := s.dated(found)
	slices.SortStableFunc(dated, func(a, b datedEvent) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return slices.Index(events, a.event) - slices.Index(events, b.event)
	})
	return unwrapEvents(dated)
}

func unwrapEvents(dated []datedEvent) []*entity.Event {
	events := make([]*entity.Event, len(dated))
	for i, d := range dated {
		events[i] = d.event
	}
	return events
}
