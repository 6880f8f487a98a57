// Package value provides the controllable value primitive that motion
// controllers animate.
//
// # Core Components
//
//   - [Value]: a single animatable property value with get/set access,
//     change listeners, and a Control entry point that hands the value to
//     an [Action] for animated progression.
//
//   - [Store]: an ordered mapping from property name to [Value], owned by
//     a controller and iterated in insertion order so animation passes are
//     deterministic.
//
//   - [Signal]: the completion future returned by Control. Signals compose
//     with [All] and [Then] without goroutines, matching a single-threaded
//     frame-pumped runtime.
//
//   - [Driver] and [StepDrivers]: the per-frame scheduling surface. The
//     host calls StepDrivers once per frame; actions advance in response.
//
// Values hold float64 or string payloads as `any`. The package never
// interprets payloads; classification and interpolation live in the
// animatable package.
package value

// An Action animates a value over time. Start begins producing values,
// calling update with each new value and complete exactly once when the
// action settles. The returned stop function halts the action in place;
// a stopped action must not call complete.
type Action interface {
	Start(update func(any), complete func()) (stop func())
}

// Value is a single animatable property value.
//
// A Value is not safe for concurrent use; like the rest of the animation
// core it is owned by the UI thread and advanced by the frame loop.
type Value struct {
	current any
	prev    any

	listeners      map[int]func(any)
	nextListenerID int

	stopActive func()
}

// New creates a value holding initial. A nil initial marks a value that
// has never been observed; controllers seed it before animating.
func New(initial any) *Value {
	return &Value{current: initial}
}

// Get returns the current value, or nil if none has been set.
func (v *Value) Get() any {
	return v.current
}

// Prev returns the value before the most recent Set.
func (v *Value) Prev() any {
	return v.prev
}

// Set assigns a new value directly, halting any in-flight animation.
func (v *Value) Set(val any) {
	v.Stop()
	v.set(val)
}

// set updates the value without touching the active action. Actions use
// this path so their own updates don't stop them.
func (v *Value) set(val any) {
	v.prev = v.current
	v.current = val
	for _, fn := range v.listeners {
		fn(val)
	}
}

// Control hands the value to an action and returns the completion signal
// for the resulting animation. Any previously active action is stopped
// first; the last Control call on a value wins.
func (v *Value) Control(action Action) *Signal {
	v.Stop()
	sig := NewSignal()
	stop := action.Start(
		func(val any) { v.set(val) },
		func() {
			v.stopActive = nil
			sig.Complete()
		},
	)
	// An action may settle synchronously inside Start.
	if !sig.Settled() {
		v.stopActive = stop
	}
	return sig
}

// Stop halts the in-flight animation, if any. The value freezes at its
// current instantaneous value; the animation's signal never settles.
func (v *Value) Stop() {
	if v.stopActive != nil {
		stop := v.stopActive
		v.stopActive = nil
		stop()
	}
}

// IsAnimating reports whether an action is currently controlling the value.
func (v *Value) IsAnimating() bool {
	return v.stopActive != nil
}

// OnChange adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (v *Value) OnChange(fn func(any)) func() {
	if v.listeners == nil {
		v.listeners = make(map[int]func(any))
	}
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}
