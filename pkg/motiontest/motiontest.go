// Package motiontest provides deterministic time control for animation
// tests.
//
// A [Harness] installs a fake clock into the value package for the
// test's lifetime and pumps frames on demand:
//
//	func TestFade(t *testing.T) {
//	    h := motiontest.New(t)
//	    done := controls.Start(motion.Label("hidden"))
//	    h.Pump(300 * time.Millisecond)
//	    if !done.Settled() {
//	        t.Error("expected fade to settle")
//	    }
//	}
package motiontest

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/value"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Harness drives animations deterministically in tests. It owns a
// FakeClock installed as the value clock for the test's lifetime.
type Harness struct {
	clock *FakeClock
}

// New creates a harness and installs its clock, restoring the previous
// clock when the test finishes.
func New(t *testing.T) *Harness {
	t.Helper()
	h := &Harness{clock: NewFakeClock()}
	prev := value.SetClock(h.clock)
	t.Cleanup(func() {
		value.SetClock(prev)
	})
	return h
}

// Clock returns the harness clock for direct manipulation.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Pump advances the clock by d and steps all active drivers once,
// the equivalent of one frame after d of elapsed time.
func (h *Harness) Pump(d time.Duration) {
	h.clock.Advance(d)
	value.StepDrivers()
}

// PumpFrames steps n frames of the given interval, advancing the clock
// before each step. Use it when an animation's intermediate values
// matter, not just its settlement.
func (h *Harness) PumpFrames(n int, interval time.Duration) {
	for i := 0; i < n; i++ {
		h.Pump(interval)
	}
}
