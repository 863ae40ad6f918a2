package service

import (
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/rdleal/intervalst/interval"
	"github.com/rs/zerolog/log"
)

// dayIndex groups events by calendar day. The interval tree answers which
// days fall inside a range; events of a day keep their input order.
type dayIndex struct {
	tree   *interval.SearchTree[entity.Date, time.Time]
	events map[entity.Date][]*entity.Event
}

func newDayIndex(events []*entity.Event, loc *time.Location) *dayIndex {
	idx := &dayIndex{
		tree:   interval.NewSearchTree[entity.Date](func(x, y time.Time) int { return x.Compare(y) }),
		events: make(map[entity.Date][]*entity.Event),
	}

	for _, event := range events {
		day, ok := event.Day(loc)
		if !ok {
			log.Debug().Str("id", event.ID).Str("date", event.Date).Msg("Skipping event with unparseable date")
			continue
		}

		if _, seen := idx.events[day]; !seen {
			start, end := dayBounds(day)
			if err := idx.tree.Insert(start, end, day); err != nil {
				log.Error().Err(err).Str("day", day.String()).Msg("Failed to index day")
			}
		}
		idx.events[day] = append(idx.events[day], event)
	}

	return idx
}

func (idx *dayIndex) on(day entity.Date) []*entity.Event {
	return idx.events[day]
}

// between returns the events of every day in [from, to].
func (idx *dayIndex) between(from, to entity.Date) map[entity.Date][]*entity.Event {
	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	days, ok := idx.tree.AllIntersections(start, end)
	if !ok {
		return nil
	}

	found := make(map[entity.Date][]*entity.Event, len(days))
	for _, day := range days {
		found[day] = idx.events[day]
	}
	return found
}

// dayBounds is the closed interval covering day. UTC keeps every day 24h long.
func dayBounds(day entity.Date) (time.Time, time.Time) {
	start := day.Time(time.UTC)
	return start, start.Add(24*time.Hour - time.Nanosecond)
}
