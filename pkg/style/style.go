// Package style defines the narrow surface through which the animation
// core observes a live rendered element.
//
// The core never builds or mutates rendered output; it only reads a
// property's current computed value to seed animations for properties it
// has not tracked before, and reconciles units between a declared target
// and a tracked value. Real bindings supply a platform-backed [Reader];
// tests and headless hosts use [MapReader].
package style

// Reader reads current computed style values from a live element.
type Reader interface {
	// Read returns the current computed value for a property, and whether
	// the property has one.
	Read(prop string) (any, bool)
}

// MapReader is a map-backed Reader for tests and headless hosts.
type MapReader map[string]any

// Read returns the mapped value for prop.
func (m MapReader) Read(prop string) (any, bool) {
	v, ok := m[prop]
	return v, ok
}
