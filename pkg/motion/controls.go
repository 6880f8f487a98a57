package motion

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-drift/motion/pkg/animatable"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/style"
	"github.com/go-drift/motion/pkg/tween"
	"github.com/go-drift/motion/pkg/value"
)

// ActionMapper derives the action that animates a single property from
// its current value toward a target under the given transition. The
// default mapper builds time-based tweens; bindings can substitute
// physics-based actions.
type ActionMapper func(key string, from, to any, transition Transition) value.Action

// UnitConverter reconciles the units of target and transitionEnd values
// against each tracked value's current unit before animation.
type UnitConverter func(store *value.Store, reader style.Reader, target, transitionEnd Target) (Target, Target)

// TweenMapper is the default ActionMapper, producing a [tween.Action]
// with the transition's delay, duration, and easing.
func TweenMapper(key string, from, to any, transition Transition) value.Action {
	return tween.Action{
		From:     from,
		To:       to,
		Delay:    transition.Delay,
		Duration: transition.Duration,
		Ease:     transition.Ease,
	}
}

// Config binds a controller to its collaborators. Zero fields get
// defaults: a fresh store, no style reader, [TweenMapper], and
// [style.ConvertUnits].
type Config struct {
	// Store holds the controllable values the controller animates.
	Store *value.Store
	// Reader observes the live element, used only to seed properties the
	// store does not track yet.
	Reader style.Reader
	// Mapper turns per-property transitions into value actions.
	Mapper ActionMapper
	// Convert reconciles units between targets and tracked values.
	Convert UnitConverter
}

// StartOptions modifies a Start request.
type StartOptions struct {
	// Priority indexes the override stack: 0 is the base declarative
	// layer, higher integers are transient interaction layers that win
	// while active.
	Priority int
	// Delay postpones the animation, on top of any transition delay.
	// Parents use it to stagger child animations.
	Delay time.Duration
}

// Controls owns the animation state of one component instance: the
// per-property value store, the priority-indexed override stack, base
// target bookkeeping, and the registered children it coordinates.
//
// A Controls is created once per component instance and lives for that
// instance's lifetime. Its props, variants, and default transition are
// refreshed every render. Like the values it controls, it is owned by
// the UI thread.
type Controls struct {
	props             Props
	variants          Variants
	defaultTransition Transition

	store   *value.Store
	reader  style.Reader
	mapper  ActionMapper
	convert UnitConverter

	// overrides is a sparse stack indexed by priority; nil means unset.
	// resolvedOverrides records the target each override resolved to when
	// it last animated, consulted when the override clears.
	overrides         []Definition
	resolvedOverrides []Target

	// baseTarget holds each property's priority-0 resting value.
	baseTarget Target

	// animating guards properties already animated in the current pass.
	animating map[string]struct{}

	children []*Controls
}

// New creates a controller bound to the given collaborators.
func New(cfg Config) *Controls {
	if cfg.Store == nil {
		cfg.Store = value.NewStore()
	}
	if cfg.Mapper == nil {
		cfg.Mapper = TweenMapper
	}
	if cfg.Convert == nil {
		cfg.Convert = func(store *value.Store, reader style.Reader, target, transitionEnd Target) (Target, Target) {
			return style.ConvertUnits(store, reader, target, transitionEnd)
		}
	}
	return &Controls{
		store:      cfg.Store,
		reader:     cfg.Reader,
		mapper:     cfg.Mapper,
		convert:    cfg.Convert,
		baseTarget: Target{},
		animating:  make(map[string]struct{}),
	}
}

// SetProps replaces the component props consulted by variant Resolve
// functions. Called every render.
func (c *Controls) SetProps(props Props) {
	c.props = props
}

// SetVariants replaces the variant set wholesale. Called every render.
func (c *Controls) SetVariants(variants Variants) {
	c.variants = variants
}

// SetDefaultTransition replaces the transition used by variants that
// declare none. Called every render.
func (c *Controls) SetDefaultTransition(transition Transition) {
	c.defaultTransition = transition
}

// Values returns the controller's value store.
func (c *Controls) Values() *value.Store {
	return c.store
}

// HasVariant reports whether a variant is registered under label.
func (c *Controls) HasVariant(label string) bool {
	_, ok := c.variants[label]
	return ok
}

// BaseTarget returns the resting value recorded for a property at
// priority 0.
func (c *Controls) BaseTarget(key string) (any, bool) {
	v, ok := c.baseTarget[key]
	return v, ok
}

// Apply assigns a definition's values synchronously, without animation.
// Used for immediate snap-to-state.
func (c *Controls) Apply(def Definition) {
	switch d := def.(type) {
	case Labels:
		for _, label := range d {
			c.applyVariant(label)
		}
	case Label:
		c.applyVariant(string(d))
	case Explicit:
		c.setValues(d.Target, 0)
		c.setValues(d.TransitionEnd, 0)
	}
}

func (c *Controls) applyVariant(label string) {
	v, ok := c.variants[label]
	if !ok {
		return
	}
	res := c.resolve(v, label)
	c.setValues(res.Target, 0)
	c.setValues(res.TransitionEnd, 0)
}

// setValues assigns target values directly, recording base-target resting
// values when assigning at the base priority.
func (c *Controls) setValues(target Target, priority int) {
	for _, key := range sortedKeys(target) {
		val := c.store.Ensure(key, nil)
		val.Set(target[key])
		if priority == 0 {
			c.baseTarget[key] = target[key]
		}
	}
}

// Start is the primary animation entry point. The definition is recorded
// in the override stack at its priority; if a strictly higher priority is
// currently occupied the request is deferred and an already-settled,
// deferred-flagged signal is returned. Otherwise the per-pass animation
// guards are cleared (recursively, so children re-animate for this pass)
// and the definition is dispatched by shape.
//
// The returned signal settles when every triggered property animation,
// including child-propagated ones, has settled.
func (c *Controls) Start(def Definition, opts ...StartOptions) *value.Signal {
	var o StartOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	c.SetOverride(def, o.Priority)
	if !c.IsHighestPriority(o.Priority) {
		return value.Deferred()
	}
	c.resetIsAnimating()
	switch d := def.(type) {
	case Labels:
		return c.animateVariantLabels(d, o)
	case Label:
		return c.animateVariant(string(d), o)
	case Explicit:
		return c.animateResolved(Resolved{
			Target:        d.Target,
			Transition:    d.Transition,
			TransitionEnd: d.TransitionEnd,
		}, o)
	}
	return value.Resolved()
}

// Stop halts every tracked value's in-flight animation immediately.
// Values freeze at their current instantaneous value; there is no
// rollback, and halted animations never settle.
func (c *Controls) Stop() {
	c.store.StopAll()
}

// SetOverride records a definition at a priority slot without starting
// it. Gesture bindings use this to arm an override before its trigger
// fires.
func (c *Controls) SetOverride(def Definition, priority int) {
	c.ensureSlot(priority)
	c.overrides[priority] = def
	if priority > 0 {
		c.resolvedOverrides[priority] = nil
	}
}

// StartOverride starts the definition recorded at a priority slot.
// An unset slot resolves immediately as a no-op.
func (c *Controls) StartOverride(priority int) *value.Signal {
	if priority >= 0 && priority < len(c.overrides) && c.overrides[priority] != nil {
		return c.Start(c.overrides[priority], StartOptions{Priority: priority})
	}
	return value.Resolved()
}

// ClearOverride unsets a priority slot. If a lower override remains the
// highest occupied slot it is restarted at its priority, and properties
// the cleared override had touched are animated back to their priority-0
// resting values. Clearing an unset slot is a no-op.
func (c *Controls) ClearOverride(priority int) {
	if priority < 0 || priority >= len(c.overrides) || c.overrides[priority] == nil {
		return
	}
	c.overrides[priority] = nil
	var resolved Target
	if priority < len(c.resolvedOverrides) {
		resolved = c.resolvedOverrides[priority]
		c.resolvedOverrides[priority] = nil
	}

	highest := 0
	for i := len(c.overrides) - 1; i > 0; i-- {
		if c.overrides[i] != nil {
			highest = i
			break
		}
	}
	c.resetIsAnimating()
	if highest > 0 {
		// The restarted override marks its properties as animating, so
		// the base restore below skips them.
		c.Start(c.overrides[highest], StartOptions{Priority: highest})
	}

	if resolved == nil {
		return
	}
	remaining := Target{}
	for key := range c.baseTarget {
		if _, touched := resolved[key]; touched {
			remaining[key] = c.baseTarget[key]
		}
	}
	if len(remaining) > 0 {
		c.animateResolved(Resolved{Target: remaining}, StartOptions{})
	}
}

// IsHighestPriority reports whether no slot with an index greater than
// priority is occupied. Priority compares only against higher indices:
// a base-layer request is accepted whenever no interaction layer is
// active above it.
func (c *Controls) IsHighestPriority(priority int) bool {
	for i := priority + 1; i < len(c.overrides); i++ {
		if c.overrides[i] != nil {
			return false
		}
	}
	return true
}

// Dispose stops all animations and releases the child registry. The
// owning component calls it on unmount, after unsubscribing from its
// parent.
func (c *Controls) Dispose() {
	c.Stop()
	c.children = nil
}

// resetIsAnimating clears the per-pass animation guards for this
// controller and, recursively, its children, so a fresh pass is not
// skipped by a prior pass's bookkeeping.
func (c *Controls) resetIsAnimating() {
	c.animating = make(map[string]struct{})
	for _, child := range c.children {
		child.resetIsAnimating()
	}
}

// resolve reduces a variant via ResolveVariant, recovering panics from
// user-supplied Resolve functions. A panicking resolver degrades to the
// empty variant and is reported through the error handler.
func (c *Controls) resolve(v Variant, label string) (res Resolved) {
	if v.Resolve == nil {
		return ResolveVariant(v, c.props)
	}
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.MotionError{
				Op:         "motion.ResolveVariant",
				Kind:       errors.KindResolve,
				Variant:    label,
				Err:        fmt.Errorf("resolver panicked: %v", r),
				StackTrace: errors.CaptureStack(),
			})
			res = Resolved{}
		}
	}()
	return ResolveVariant(v, c.props)
}

// animateVariant animates the variant registered under label and
// propagates the label to registered children. BeforeChildren and
// AfterChildren sequence the two phases strictly; otherwise they run
// concurrently. A missing label is a no-op for this controller but
// children are still propagated to, since a child may declare the label
// even when its parent does not.
func (c *Controls) animateVariant(label string, o StartOptions) *value.Signal {
	var res Resolved
	if v, ok := c.variants[label]; ok {
		res = c.resolve(v, label)
	}
	transition := c.defaultTransition
	if res.Transition != nil {
		transition = *res.Transition
	}

	if len(c.children) == 0 {
		return c.animateResolved(res, o)
	}

	getAnimation := func() *value.Signal {
		return c.animateResolved(res, o)
	}
	getChildren := func() *value.Signal {
		return c.animateChildren(label, transition, o.Priority)
	}
	switch {
	case transition.BeforeChildren:
		return value.Then(getAnimation(), getChildren)
	case transition.AfterChildren:
		return value.Then(getChildren(), getAnimation)
	default:
		return value.All(getAnimation(), getChildren())
	}
}

// animateVariantLabels animates several labels together, aggregating
// their completions.
func (c *Controls) animateVariantLabels(labels Labels, o StartOptions) *value.Signal {
	signals := make([]*value.Signal, 0, len(labels))
	for _, label := range labels {
		signals = append(signals, c.animateVariant(label, o))
	}
	return value.All(signals...)
}

// animateResolved runs one animation pass over a resolved target:
// seeding untracked properties from the live style, reconciling units,
// recording base-target and override bookkeeping, then handing each
// animatable property to its value's action and snapping the rest.
// TransitionEnd values are assigned only after every property animation
// settles.
func (c *Controls) animateResolved(res Resolved, o StartOptions) *value.Signal {
	target := res.Target
	if len(target) == 0 {
		return value.Resolved()
	}

	// Seed untracked properties from the live element so every animation
	// has a defined start point.
	for _, key := range sortedKeys(target) {
		if c.store.Has(key) {
			continue
		}
		var initial any
		if c.reader != nil {
			if cur, ok := c.reader.Read(key); ok {
				initial = cur
			}
		}
		c.store.Set(key, value.New(initial))
	}

	transitionEnd := res.TransitionEnd
	if c.convert != nil {
		target, transitionEnd = c.convert(c.store, c.reader, target, transitionEnd)
	}

	transition := c.defaultTransition
	if res.Transition != nil {
		transition = *res.Transition
	}

	if o.Priority > 0 {
		c.recordResolvedOverride(o.Priority, target)
	}

	var signals []*value.Signal
	for _, key := range sortedKeys(target) {
		if _, busy := c.animating[key]; busy {
			continue
		}
		c.animating[key] = struct{}{}

		to := target[key]
		if o.Priority == 0 {
			c.baseTarget[key] = to
		}
		val, _ := c.store.Get(key)
		if animatable.Is(to) {
			keyTransition := transition.forKey(key)
			keyTransition.Delay += o.Delay
			signals = append(signals, val.Control(c.mapper(key, val.Get(), to, keyTransition)))
		} else {
			val.Set(to)
		}
	}

	done := value.All(signals...)
	if len(transitionEnd) == 0 {
		return done
	}
	return value.Then(done, func() *value.Signal {
		c.setValues(transitionEnd, o.Priority)
		return value.Resolved()
	})
}

func (c *Controls) ensureSlot(priority int) {
	for len(c.overrides) <= priority {
		c.overrides = append(c.overrides, nil)
	}
	for len(c.resolvedOverrides) <= priority {
		c.resolvedOverrides = append(c.resolvedOverrides, nil)
	}
}

func (c *Controls) recordResolvedOverride(priority int, target Target) {
	c.ensureSlot(priority)
	resolved := c.resolvedOverrides[priority]
	if resolved == nil {
		resolved = Target{}
		c.resolvedOverrides[priority] = resolved
	}
	for key, v := range target {
		resolved[key] = v
	}
}

func sortedKeys(target Target) []string {
	keys := make([]string, 0, len(target))
	for key := range target {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
