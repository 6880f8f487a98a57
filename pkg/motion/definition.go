package motion

// Definition selects what an animation request animates: a single variant
// label, a list of labels, or an explicit target. The three cases form a
// closed set matched exhaustively by [Controls.Start] and [Controls.Apply].
type Definition interface {
	isDefinition()
}

// Label animates the variant registered under this name.
type Label string

func (Label) isDefinition() {}

// Labels animates several variants together; their property animations
// are aggregated into one completion.
type Labels []string

func (Labels) isDefinition() {}

// Explicit animates directly to a target without consulting the variant
// set.
type Explicit struct {
	Target        Target
	Transition    *Transition
	TransitionEnd Target
}

func (Explicit) isDefinition() {}
