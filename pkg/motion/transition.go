package motion

import "time"

// Target maps property names to the values to reach. Keys are stable
// string identifiers such as "x" or "opacity"; values are numbers or
// strings (unit values, colors, or directly-assigned keywords).
type Target map[string]any

// Props carries the owning component's current props, passed to variant
// Resolve functions.
type Props map[string]any

// Transition configures the timing of an animation and the coordination
// of a parent's animation with its children's.
type Transition struct {
	// Delay postpones the start of every property animation.
	Delay time.Duration
	// Duration is the length of each property animation.
	// Zero falls back to the mapper's default.
	Duration time.Duration
	// Ease transforms linear progress. Nil means linear.
	Ease func(float64) float64

	// BeforeChildren runs the component's own animation to completion
	// before starting children. AfterChildren is the reverse. With
	// neither set, both phases run concurrently.
	BeforeChildren bool
	AfterChildren  bool

	// StaggerChildren offsets each child's start by its registration
	// index times this duration.
	StaggerChildren time.Duration
	// StaggerDirection orders the stagger fan-out: forward from the first
	// child (>= 0) or backward from the last (-1).
	StaggerDirection int
	// DelayChildren postpones every child animation by a fixed amount,
	// applied before stagger offsets.
	DelayChildren time.Duration

	// Overrides replaces the timing fields for individual properties.
	Overrides map[string]Transition
}

// forKey returns the transition that applies to a single property,
// substituting a per-property override when one is declared.
func (t Transition) forKey(key string) Transition {
	if over, ok := t.Overrides[key]; ok {
		return over
	}
	return t
}
