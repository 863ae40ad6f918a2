package state

import (
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/util"
)

// Header tracks the classes of the page header while scrolling.
type Header struct {
	lastScrollTop float64
	Hidden        bool
	Scrolled      bool
}

func (h *Header) Update(scrollTop float64) {
	if scrollTop > h.lastScrollTop && scrollTop > helpers.HeaderHideOffset {
		h.Hidden = true
	} else {
		h.Hidden = false
	}

	h.Scrolled = scrollTop > helpers.HeaderScrolledOffset

	if scrollTop <= 0 {
		scrollTop = 0
	}
	h.lastScrollTop = scrollTop
}

// ParallaxOffset is the vertical translation of a parallax layer. A
// non-positive speed uses the default.
func ParallaxOffset(scrollTop, speed float64) float64 {
	if speed <= 0 {
		speed = helpers.DefaultParallaxSpeed
	}
	return -(scrollTop * speed)
}

// Reveal marks an element revealed the first time enough of it is visible.
type Reveal struct {
	Revealed bool
}

func (r *Reveal) Observe(intersectionRatio float64) bool {
	if !r.Revealed && intersectionRatio >= helpers.RevealThreshold {
		r.Revealed = true
	}
	return r.Revealed
}

// ScrollTracker feeds throttled scroll positions to the header and to the
// parallax layers.
type ScrollTracker struct {
	Header   *Header
	throttle *util.Throttle[float64]

	speeds  []float64
	offsets []float64
}

func NewScrollTracker(clock util.Clock, parallaxSpeeds ...float64) *ScrollTracker {
	t := &ScrollTracker{
		Header:  &Header{},
		speeds:  parallaxSpeeds,
		offsets: make([]float64, len(parallaxSpeeds)),
	}
	t.throttle = util.NewThrottle(clock, helpers.FrameInterval, t.apply)
	return t
}

func (t *ScrollTracker) Scroll(scrollTop float64) {
	t.throttle.Call(scrollTop)
}

func (t *ScrollTracker) apply(scrollTop float64) {
	t.Header.Update(scrollTop)
	for i, speed := range t.speeds {
		t.offsets[i] = ParallaxOffset(scrollTop, speed)
	}
}

// Offsets are the current translations of the parallax layers.
func (t *ScrollTracker) Offsets() []float64 {
	return t.offsets
}

func (t *ScrollTracker) Stop() {
	t.throttle.Stop()
}
