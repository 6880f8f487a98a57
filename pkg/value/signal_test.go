package value

import (
	"context"
	"testing"
	"time"
)

func TestSignalComplete(t *testing.T) {
	sig := NewSignal()
	if sig.Settled() {
		t.Error("new signal should not be settled")
	}

	fired := 0
	sig.OnComplete(func() { fired++ })

	sig.Complete()
	if !sig.Settled() {
		t.Error("signal should be settled after Complete")
	}
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}

	// Completing twice is a no-op.
	sig.Complete()
	if fired != 1 {
		t.Errorf("callback fired %d times after double Complete, want 1", fired)
	}
}

func TestSignalOnCompleteAfterSettle(t *testing.T) {
	sig := Resolved()
	fired := false
	sig.OnComplete(func() { fired = true })
	if !fired {
		t.Error("OnComplete on a settled signal should fire immediately")
	}
}

func TestSignalDeferred(t *testing.T) {
	sig := Deferred()
	if !sig.Settled() {
		t.Error("deferred signal should be settled")
	}
	if !sig.WasDeferred() {
		t.Error("deferred signal should report WasDeferred")
	}
	if Resolved().WasDeferred() {
		t.Error("resolved signal should not report WasDeferred")
	}
}

func TestSignalAll(t *testing.T) {
	a := NewSignal()
	b := NewSignal()
	all := All(a, b)

	if all.Settled() {
		t.Error("All should not settle before its parts")
	}
	a.Complete()
	if all.Settled() {
		t.Error("All should not settle with one part pending")
	}
	b.Complete()
	if !all.Settled() {
		t.Error("All should settle once every part has")
	}
}

func TestSignalAllEmpty(t *testing.T) {
	if !All().Settled() {
		t.Error("All with no parts should be settled immediately")
	}
}

func TestSignalThen(t *testing.T) {
	first := NewSignal()
	second := NewSignal()
	started := false

	chained := Then(first, func() *Signal {
		started = true
		return second
	})

	if started {
		t.Error("Then should not start the next stage before the first settles")
	}
	first.Complete()
	if !started {
		t.Error("Then should start the next stage when the first settles")
	}
	if chained.Settled() {
		t.Error("chained signal should wait for the second stage")
	}
	second.Complete()
	if !chained.Settled() {
		t.Error("chained signal should settle with the second stage")
	}
}

func TestSignalWait(t *testing.T) {
	sig := NewSignal()
	go func() {
		time.Sleep(time.Millisecond)
		sig.Complete()
	}()
	if err := sig.Wait(context.Background()); err != nil {
		t.Errorf("Wait returned %v, want nil", err)
	}
}

func TestSignalWaitCancelled(t *testing.T) {
	sig := NewSignal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sig.Wait(ctx); err == nil {
		t.Error("Wait should return the context error when cancelled")
	}
}

func TestWaitAll(t *testing.T) {
	a := NewSignal()
	b := NewSignal()
	go func() {
		a.Complete()
		b.Complete()
	}()
	if err := WaitAll(context.Background(), a, b); err != nil {
		t.Errorf("WaitAll returned %v, want nil", err)
	}
}
