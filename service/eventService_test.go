package service

import (
	"testing"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*3600)

func eventIDs(events []*entity.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestEventService_Bucket(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.June, 15, 0, 0, 0, 0, tokyo)

	events := []*entity.Event{
		{ID: "a", Date: "2024-06-20"},
		{ID: "b", Date: "2024-06-01"},
		{ID: "c", Date: "2024-07-01"},
	}

	upcoming, past := s.Bucket(events, reference)
	assert.Equal(t, []string{"a", "c"}, eventIDs(upcoming))
	assert.Equal(t, []string{"b"}, eventIDs(past))

	listing := s.SortForListing(events, reference)
	assert.Equal(t, []string{"a", "c", "b"}, eventIDs(listing))
}

func TestEventService_Bucket_DayGranularity(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.June, 15, 21, 0, 0, 0, tokyo)

	events := []*entity.Event{
		{ID: "morning", Date: "2024-06-15T10:00:00+09:00"},
		{ID: "yesterday", Date: "2024-06-14T23:59"},
	}

	upcoming, past := s.Bucket(events, reference)
	assert.Equal(t, []string{"morning"}, eventIDs(upcoming), "an event earlier today is still upcoming")
	assert.Equal(t, []string{"yesterday"}, eventIDs(past))
	assert.Equal(t, entity.EventStatusUpcoming, s.Status(events[0], reference))
	assert.Equal(t, entity.EventStatusPast, s.Status(events[1], reference))
}

func TestEventService_Bucket_Stable(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.June, 1, 0, 0, 0, 0, tokyo)

	events := []*entity.Event{
		{ID: "first", Date: "2024-06-10"},
		{ID: "second", Date: "2024-06-10"},
		{ID: "third", Date: "2024-06-10"},
	}

	upcoming, past := s.Bucket(events, reference)
	assert.Equal(t, []string{"first", "second", "third"}, eventIDs(upcoming))
	assert.Empty(t, past)

	later := time.Date(2024, time.June, 15, 0, 0, 0, 0, tokyo)
	events = append(events, &entity.Event{ID: "older", Date: "2024-06-01"})

	upcoming, past = s.Bucket(events, later)
	assert.Empty(t, upcoming)
	assert.Equal(t, []string{"first", "second", "third", "older"}, eventIDs(past), "same-day past events keep input order")
}

func TestEventService_Bucket_ExcludesUnparseable(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.June, 15, 0, 0, 0, 0, tokyo)

	events := []*entity.Event{
		{ID: "broken", Date: "近日公開"},
		{ID: "empty"},
		{ID: "ok", Date: "2024-06-16"},
	}

	upcoming, past := s.Bucket(events, reference)
	assert.Equal(t, []string{"ok"}, eventIDs(upcoming))
	assert.Empty(t, past)
	assert.Equal(t, len(upcoming)+len(past), 1)
}

func TestEventService_Bucket_UsesTimeField(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.June, 1, 0, 0, 0, 0, tokyo)

	events := []*entity.Event{
		{ID: "night", Date: "2024-06-10", Time: "19:00"},
		{ID: "noon", Date: "2024-06-10", Time: "12:00"},
	}

	upcoming, _ := s.Bucket(events, reference)
	assert.Equal(t, []string{"noon", "night"}, eventIDs(upcoming))
}

func TestEventService_Upcoming(t *testing.T) {
	s := NewEventService(tokyo)
	reference := time.Date(2024, time.January, 1, 0, 0, 0, 0, tokyo)

	var events []*entity.Event
	for day := 10; day > 0; day-- {
		events = append(events, &entity.Event{ID: entity.NewDate(2024, time.February, day).String(), Date: entity.NewDate(2024, time.February, day).String()})
	}

	upcoming := s.Upcoming(events, reference, 5)
	assert.Equal(t, []string{"2024-02-01", "2024-02-02", "2024-02-03", "2024-02-04", "2024-02-05"}, eventIDs(upcoming))

	next, ok := s.Next(events, reference)
	require.True(t, ok)
	assert.Equal(t, "2024-02-01", next.ID)

	_, ok = s.Next(events, time.Date(2025, time.January, 1, 0, 0, 0, 0, tokyo))
	assert.False(t, ok)
}

func TestEventService_FindOneByID(t *testing.T) {
	s := NewEventService(tokyo)
	events := []*entity.Event{{ID: "a"}, {ID: "b"}}

	event, err := s.FindOneByID(events, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", event.ID)

	_, err = s.FindOneByID(events, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_FindBetweenDates(t *testing.T) {
	s := NewEventService(tokyo)

	events := []*entity.Event{
		{ID: "late", Date: "2024-03-20"},
		{ID: "early-b", Date: "2024-03-05"},
		{ID: "early-a", Date: "2024-03-05"},
		{ID: "april", Date: "2024-04-01"},
		{ID: "feb", Date: "2024-02-29"},
	}

	found := s.FindBetweenDates(events, entity.NewDate(2024, time.March, 1), entity.NewDate(2024, time.March, 31))
	assert.Equal(t, []string{"early-b", "early-a", "late"}, eventIDs(found))

	assert.Equal(t, []string{"early-b", "early-a"}, eventIDs(s.FindByDate(events, entity.NewDate(2024, time.March, 5))))
	assert.Empty(t, s.FindByDate(events, entity.NewDate(2024, time.March, 6)))
}
