package value

// Store maps property names to values, preserving insertion order.
//
// A controller owns one Store per component instance. Insertion order is
// the order properties were first animated or seeded, which keeps
// ForEach-driven passes (stop, snapshotting) deterministic.
type Store struct {
	values map[string]*Value
	order  []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]*Value)}
}

// Has reports whether a value is tracked under key.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get returns the value tracked under key.
func (s *Store) Get(key string) (*Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set tracks v under key, replacing any existing value.
func (s *Store) Set(key string, v *Value) {
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = v
}

// Ensure returns the value tracked under key, creating one holding
// initial if the key is untracked.
func (s *Store) Ensure(key string, initial any) *Value {
	if v, ok := s.values[key]; ok {
		return v
	}
	v := New(initial)
	s.Set(key, v)
	return v
}

// Len returns the number of tracked values.
func (s *Store) Len() int {
	return len(s.order)
}

// ForEach visits every tracked value in insertion order.
func (s *Store) ForEach(fn func(key string, v *Value)) {
	for _, key := range s.order {
		fn(key, s.values[key])
	}
}

// StopAll halts every tracked value's in-flight animation.
func (s *Store) StopAll() {
	s.ForEach(func(_ string, v *Value) {
		v.Stop()
	})
}
