// Package motion provides variant-driven animation controls for component
// trees.
//
// A component declares named visual states ("variants") and transitions
// between them imperatively or declaratively. Each component instance owns
// one [Controls], which resolves variants into per-property targets,
// animates the properties through controllable values, arbitrates
// competing requests by priority, and propagates variant animations to
// registered children with stagger timing.
//
// # Core Types
//
// [Controls] is the per-component controller. It is created once per
// component instance via [New] and refreshed every render with SetProps,
// SetVariants, and SetDefaultTransition.
//
// [Variant] describes a target visual state: a [Target] of property
// values, an optional [Transition], and an optional TransitionEnd target
// snapped to after the animation settles. A Variant with a Resolve
// function is computed lazily from the component's props.
//
// [Definition] selects what to animate (a variant [Label], a list of
// [Labels], or an [Explicit] target) and is matched exhaustively.
//
// # Basic Usage
//
//	controls := motion.New(motion.Config{})
//	controls.SetVariants(motion.Variants{
//	    "visible": {Target: motion.Target{"opacity": 1.0}},
//	    "hidden": {
//	        Target:        motion.Target{"opacity": 0.0},
//	        TransitionEnd: motion.Target{"display": "none"},
//	    },
//	})
//
//	done := controls.Start(motion.Label("hidden"))
//	done.OnComplete(func() {
//	    // opacity reached 0 and display snapped to "none"
//	})
//
// # Priorities
//
// Priority 0 is the always-overridable base layer; higher integers are
// transient interaction layers (hover, press) that win while active:
//
//	controls.Start(motion.Label("hover"), motion.StartOptions{Priority: 1})
//	// later
//	controls.ClearOverride(1) // falls back to the base state
//
// # Children and Stagger
//
// Parents propagate variant-label animations to registered children.
// Transition flags sequence the two phases (BeforeChildren/AfterChildren)
// and StaggerChildren/StaggerDirection/DelayChildren shape child timing.
// Children register in render order; re-registration each render keeps
// stagger indices aligned with the current tree.
//
// Animation progression is frame-pumped: the host calls
// [value.StepDrivers] once per frame, and completion surfaces through
// [value.Signal] futures that this package composes deterministically.
package motion
