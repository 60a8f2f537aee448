package testing

import (
	"sync"
	"time"

	"github.com/go-drift/lattice/pkg/core"
)

// FrameDuration is the interval Tick advances the clock by, and how far
// away a next-frame redraw is.
const FrameDuration = 16 * time.Millisecond

// FakeClock is the time source of a Tester. It only moves when told to.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock set to midnight UTC on 2024-01-01.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// AdvanceTo moves the clock to t. The clock never goes back.
func (c *FakeClock) AdvanceTo(t time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.now) {
		c.now = t
	}
	return c.now
}

// Due returns when req fires: one frame from now for a next-frame request,
// its instant (or now, if that has passed) for a scheduled one. A waiting
// request never fires.
func (c *FakeClock) Due(req core.RedrawRequest) (time.Time, bool) {
	now := c.Now()
	if req.IsNextFrame() {
		return now.Add(FrameDuration), true
	}
	if at, ok := req.At(); ok {
		if at.Before(now) {
			return now, true
		}
		return at, true
	}
	return time.Time{}, false
}
