package motiontest

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/value"
)

func TestFakeClockAdvance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()
	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("advanced %v, want 250ms", got)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := NewFakeClock()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.Set(at)
	if !c.Now().Equal(at) {
		t.Errorf("Now() = %v, want %v", c.Now(), at)
	}
}

func TestHarnessPump(t *testing.T) {
	h := New(t)

	var elapsed []time.Duration
	d := value.NewDriver(func(e time.Duration) {
		elapsed = append(elapsed, e)
	})
	d.Start()
	defer d.Stop()

	h.Pump(16 * time.Millisecond)
	h.PumpFrames(2, 16*time.Millisecond)

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond, 48 * time.Millisecond}
	if len(elapsed) != len(want) {
		t.Fatalf("stepped %d times, want %d", len(elapsed), len(want))
	}
	for i := range want {
		if elapsed[i] != want[i] {
			t.Errorf("step %d elapsed = %v, want %v", i, elapsed[i], want[i])
		}
	}
}

func TestHarnessRestoresClock(t *testing.T) {
	before := value.Now()
	t.Run("inner", func(t *testing.T) {
		h := New(t)
		h.Pump(time.Hour)
	})
	after := value.Now()
	if after.Sub(before) > time.Minute {
		t.Error("fake clock leaked past the test that installed it")
	}
}
