package util

import (
	"sort"
	"sync"
	"time"
)

type Timer interface {
	Stop() bool
}

// Clock is the time source of scheduled callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock only moves when Advance is called. Due callbacks run on the
// goroutine calling Advance, ordered by deadline.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Time
	seq      int
	f        func()
	stopped  bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, deadline: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		t.f()
	}

	c.mu.Lock()
	c.now = target
	c.mu.Unlock()
}

// nextDue pops the earliest timer due at or before target and moves the clock
// to its deadline.
func (c *ManualClock) nextDue(target time.Time) *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			pending = append(pending, t)
		}
	}
	c.timers = pending

	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].deadline.Equal(c.timers[j].deadline) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline.Before(c.timers[j].deadline)
	})

	if len(c.timers) == 0 || c.timers[0].deadline.After(target) {
		return nil
	}

	t := c.timers[0]
	c.timers = c.timers[1:]
	t.stopped = true
	c.now = t.deadline
	return t
}

// Throttle runs fn at most once per interval. A call made inside the window
// is deferred to its end; only the latest deferred value is delivered.
type Throttle[T any] struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	fn       func(T)

	last    time.Time
	ran     bool
	pending *T
	timer   Timer
}

func NewThrottle[T any](clock Clock, interval time.Duration, fn func(T)) *Throttle[T] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Throttle[T]{
		clock:    clock,
		interval: interval,
		fn:       fn,
	}
}

func (t *Throttle[T]) Call(v T) {
	t.mu.Lock()
	now := t.clock.Now()
	if !t.ran || now.Sub(t.last) >= t.interval {
		t.ran = true
		t.last = now
		t.mu.Unlock()
		t.fn(v)
		return
	}

	t.pending = &v
	if t.timer == nil {
		wait := t.interval - now.Sub(t.last)
		t.timer = t.clock.AfterFunc(wait, t.flush)
	}
	t.mu.Unlock()
}

func (t *Throttle[T]) flush() {
	t.mu.Lock()
	t.timer = nil
	pending := t.pending
	t.pending = nil
	if pending == nil {
		t.mu.Unlock()
		return
	}
	t.last = t.clock.Now()
	t.mu.Unlock()

	t.fn(*pending)
}

// Stop drops a deferred call.
func (t *Throttle[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
}

// Debounce runs fn once calls have stopped for wait, with the latest value.
type Debounce[T any] struct {
	mu    sync.Mutex
	clock Clock
	wait  time.Duration
	fn    func(T)
	timer Timer
	gen   int
}

func NewDebounce[T any](clock Clock, wait time.Duration, fn func(T)) *Debounce[T] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debounce[T]{
		clock: clock,
		wait:  wait,
		fn:    fn,
	}
}

func (d *Debounce[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(v)
	})
}

func (d *Debounce[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
