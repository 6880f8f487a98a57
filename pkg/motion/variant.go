package motion

// Variant is a named declarative description of a target visual state:
// property values to reach, an optional transition shaping how they are
// reached, and optional transitionEnd values snapped to after the
// animation completes (never interpolated).
//
// A Variant may instead be computed lazily from the owning component's
// props by setting Resolve; the static fields are then ignored.
type Variant struct {
	// Target is the set of property values to animate to.
	Target Target
	// Transition shapes the animation. Nil falls back to the controller's
	// default transition.
	Transition *Transition
	// TransitionEnd values are assigned directly once all property
	// animations settle, letting a variant land on a value not reachable
	// by interpolation (such as switching "display" after a fade).
	TransitionEnd Target
	// Resolve computes the variant from the component's current props at
	// animation time. Invoked exactly once per resolution.
	Resolve func(props Props) Variant
}

// Variants maps labels to variants. A controller's variant set is
// replaced wholesale on each prop update, never partially merged.
type Variants map[string]Variant

// Resolved is a variant reduced to its three animation inputs.
type Resolved struct {
	Target        Target
	Transition    *Transition
	TransitionEnd Target
}

// ResolveVariant reduces a variant to its target, transition, and
// transitionEnd, invoking the Resolve function exactly once with props
// when the variant is lazy. It is pure: neither the variant nor props is
// mutated, and a zero Variant yields a zero Resolved.
func ResolveVariant(v Variant, props Props) Resolved {
	if v.Resolve != nil {
		v = v.Resolve(props)
	}
	return Resolved{
		Target:        v.Target,
		Transition:    v.Transition,
		TransitionEnd: v.TransitionEnd,
	}
}
