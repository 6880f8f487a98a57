// Package tween provides the default time-based animation action and the
// easing curves that shape it.
//
// An [Action] interpolates a value from its origin to a target over a
// fixed duration, advanced by the frame loop through [value.StepDrivers].
// Controllers build Actions through their transition mapper; the action
// itself knows nothing about properties, variants, or priorities.
package tween

import (
	"time"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/value"
)

// DefaultDuration applies when a transition specifies no duration.
const DefaultDuration = 300 * time.Millisecond

// Action animates a value from From to To over Duration, after waiting
// Delay. It implements [value.Action].
//
// Stopping the action freezes the value at its current instantaneous
// value; the completion callback never fires for a stopped action.
type Action struct {
	// From is the starting value. A nil From is replaced with the zero
	// origin of To (0, "0px", transparent).
	From any
	// To is the target value.
	To any
	// Delay postpones the start of interpolation.
	Delay time.Duration
	// Duration is the length of the animation. Zero means DefaultDuration.
	Duration time.Duration
	// Ease transforms linear progress. Nil means linear.
	Ease func(float64) float64
}

// Start begins the animation, driving update each frame and calling
// complete once the target is reached.
func (a Action) Start(update func(any), complete func()) (stop func()) {
	from := a.From
	if from == nil {
		from = animatable.ZeroOf(a.To)
	}
	duration := a.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	var driver *value.Driver
	driver = value.NewDriver(func(elapsed time.Duration) {
		if elapsed < a.Delay {
			return
		}
		progress := float64(elapsed-a.Delay) / float64(duration)
		if progress >= 1 {
			driver.Stop()
			update(a.To)
			complete()
			return
		}
		eased := progress
		if a.Ease != nil {
			eased = a.Ease(progress)
		}
		update(animatable.Lerp(from, a.To, eased))
	})
	driver.Start()
	return driver.Stop
}
