package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestManualClock_Advance(t *testing.T) {
	clock := NewManualClock(epoch)

	var fired []string
	clock.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "b") })
	clock.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "a") })
	stopped := clock.AfterFunc(15*time.Millisecond, func() { fired = append(fired, "x") })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	clock.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, epoch.Add(15*time.Millisecond), clock.Now())

	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
}

func TestThrottle(t *testing.T) {
	clock := NewManualClock(epoch)

	var got []int
	throttle := NewThrottle(clock, 16*time.Millisecond, func(v int) { got = append(got, v) })

	throttle.Call(1)
	assert.Equal(t, []int{1}, got)

	clock.Advance(4 * time.Millisecond)
	throttle.Call(2)
	throttle.Call(3)
	assert.Equal(t, []int{1}, got, "calls inside the frame are deferred")

	clock.Advance(12 * time.Millisecond)
	assert.Equal(t, []int{1, 3}, got, "latest position wins")

	clock.Advance(16 * time.Millisecond)
	throttle.Call(4)
	assert.Equal(t, []int{1, 3, 4}, got)
}

func TestThrottle_Stop(t *testing.T) {
	clock := NewManualClock(epoch)

	var got []int
	throttle := NewThrottle(clock, 16*time.Millisecond, func(v int) { got = append(got, v) })

	throttle.Call(1)
	throttle.Call(2)
	throttle.Stop()
	clock.Advance(time.Second)

	assert.Equal(t, []int{1}, got)
}

func TestDebounce(t *testing.T) {
	clock := NewManualClock(epoch)

	var got []string
	debounce := NewDebounce(clock, 2*time.Second, func(v string) { got = append(got, v) })

	debounce.Call("a")
	clock.Advance(time.Second)
	debounce.Call("b")
	clock.Advance(time.Second)
	assert.Empty(t, got)

	clock.Advance(time.Second)
	assert.Equal(t, []string{"b"}, got)

	debounce.Call("c")
	debounce.Stop()
	clock.Advance(5 * time.Second)
	assert.Equal(t, []string{"b"}, got)
}
