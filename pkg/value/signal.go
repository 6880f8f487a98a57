package value

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Signal is the completion future attached to a controlled animation.
//
// A Signal settles exactly once, when the animation it tracks finishes.
// Callbacks registered with OnComplete run synchronously on the thread
// that settles the signal, so composition with [All] and [Then] is
// deterministic: no goroutines, no reordering. Use Done or Wait when a
// background goroutine needs to block until the animation settles.
type Signal struct {
	mu       sync.Mutex
	done     chan struct{}
	settled  bool
	deferred bool
	subs     []func()
}

// NewSignal creates an unsettled signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Resolved returns an already-settled signal.
func Resolved() *Signal {
	s := NewSignal()
	s.Complete()
	return s
}

// Deferred returns an already-settled signal flagged as deferred.
//
// Controllers hand one back when an animation request is masked by a
// higher-priority override. The signal completes like an empty animation,
// but WasDeferred lets callers tell the two apart.
func Deferred() *Signal {
	s := Resolved()
	s.deferred = true
	return s
}

// Complete settles the signal and runs registered callbacks.
// Completing an already-settled signal is a no-op.
func (s *Signal) Complete() {
	s.mu.Lock()
	if s.settled {
		s.mu.Unlock()
		return
	}
	s.settled = true
	subs := s.subs
	s.subs = nil
	close(s.done)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Settled reports whether the signal has completed.
func (s *Signal) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// WasDeferred reports whether the signal represents a request that was
// deferred by a higher-priority override rather than animated.
func (s *Signal) WasDeferred() bool {
	return s.deferred
}

// OnComplete registers a callback to run when the signal settles.
// If the signal is already settled, the callback runs immediately.
func (s *Signal) OnComplete(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	if s.settled {
		s.mu.Unlock()
		fn()
		return
	}
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Done returns a channel closed when the signal settles.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the signal settles or the context is cancelled.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// All returns a signal that settles once every given signal has settled.
// With no signals it returns an already-settled signal. Aggregation is
// counter-based and runs on the settling thread, keeping completion order
// deterministic for single-threaded frame pumps.
func All(signals ...*Signal) *Signal {
	if len(signals) == 0 {
		return Resolved()
	}
	out := NewSignal()
	remaining := len(signals)
	var mu sync.Mutex
	for _, sig := range signals {
		sig.OnComplete(func() {
			mu.Lock()
			remaining--
			settled := remaining == 0
			mu.Unlock()
			if settled {
				out.Complete()
			}
		})
	}
	return out
}

// Then returns a signal that settles when the signal produced by next
// settles; next is invoked only after first settles. This is the
// sequential composition used for before/after-children ordering and
// post-animation value assignment.
func Then(first *Signal, next func() *Signal) *Signal {
	out := NewSignal()
	first.OnComplete(func() {
		next().OnComplete(func() {
			out.Complete()
		})
	})
	return out
}

// WaitAll blocks until every signal settles or the context is cancelled.
// Unlike [All] it is meant for callers off the frame loop, such as a
// binding layer waiting for a transition before tearing down a view.
func WaitAll(ctx context.Context, signals ...*Signal) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sig := range signals {
		sig := sig
		g.Go(func() error {
			return sig.Wait(ctx)
		})
	}
	return g.Wait()
}
