package motion

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/value"
)

// AddChild registers a child controller. Registration order determines
// stagger order, so the binding layer re-registers children every render
// after ResetChildren. Adding an already-registered child is a no-op.
func (c *Controls) AddChild(child *Controls) {
	if child == nil || child == c {
		return
	}
	for _, existing := range c.children {
		if existing == child {
			return
		}
	}
	c.children = append(c.children, child)
}

// RemoveChild unregisters a child controller.
func (c *Controls) RemoveChild(child *Controls) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// ResetChildren clears the registry entirely. Called before
// re-registration each render so stagger order reflects the current
// render order, not historical accumulation.
func (c *Controls) ResetChildren() {
	c.children = nil
}

// ChildCount returns the number of registered children.
func (c *Controls) ChildCount() int {
	return len(c.children)
}

// Subscribe registers c as a child of parent and returns a one-shot
// unregister function. The child holds no reference to the parent beyond
// that closure; the parent holds a non-owning back-reference cleared on
// unregister or ResetChildren.
func (c *Controls) Subscribe(parent *Controls) func() {
	if parent == nil {
		return func() {}
	}
	parent.AddChild(c)
	var once sync.Once
	return func() {
		once.Do(func() {
			parent.RemoveChild(c)
		})
	}
}

// animateChildren propagates a variant label to every registered child
// with its stagger delay. Child i (zero-based, registration order) waits
// i*stagger when the direction is forward, or (n-1-i)*stagger when
// reversed, on top of the flat children delay. A child without the label
// resolves as a no-op but still participates in the aggregate, keeping
// sibling stagger indices stable.
func (c *Controls) animateChildren(label string, transition Transition, priority int) *value.Signal {
	if len(c.children) == 0 {
		return value.Resolved()
	}
	maxStagger := time.Duration(len(c.children)-1) * transition.StaggerChildren
	signals := make([]*value.Signal, 0, len(c.children))
	for i, child := range c.children {
		delay := transition.DelayChildren
		if transition.StaggerDirection < 0 {
			delay += maxStagger - time.Duration(i)*transition.StaggerChildren
		} else {
			delay += time.Duration(i) * transition.StaggerChildren
		}
		signals = append(signals, child.animateVariant(label, StartOptions{
			Delay:    delay,
			Priority: priority,
		}))
	}
	return value.All(signals...)
}
