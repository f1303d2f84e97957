package rc

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) OnBlockEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func withRecorder(t *testing.T) *eventRecorder {
	t.Helper()
	rec := &eventRecorder{}
	SetObserver(rec)
	SetLogger(zaptest.NewLogger(t))
	t.Cleanup(func() {
		SetObserver(nil)
		SetLogger(nil)
	})
	return rec
}

func expectTypes(t *testing.T, got, want []EventType) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestObserverLifecycle(t *testing.T) {
	rec := withRecorder(t)
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	p.Release()

	expectTypes(t, rec.types(), []EventType{EventAcquired, EventDisposed, EventFreed})

	if rec.events[0].Strong != 1 {
		t.Fatalf("acquired with strong = %d, want 1", rec.events[0].Strong)
	}
	if rec.events[1].Strong != 0 {
		t.Fatalf("disposed with strong = %d, want 0", rec.events[1].Strong)
	}
}

func TestObserverWeakDelaysFree(t *testing.T) {
	rec := withRecorder(t)
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	w := p.Downgrade()
	p.Release()

	// Disposed fires at the last strong release; Freed waits for the
	// last weak release.
	expectTypes(t, rec.types(), []EventType{EventAcquired, EventDisposed})

	w.Release()
	expectTypes(t, rec.types(), []EventType{EventAcquired, EventDisposed, EventFreed})
}

func TestObserverCloneIsSilent(t *testing.T) {
	rec := withRecorder(t)
	g := newGuard(t)

	p, _ := New(g.alloc(42))
	q := p.Clone()
	q.Release()
	p.Release()

	// Copies never create blocks.
	expectTypes(t, rec.types(), []EventType{EventAcquired, EventDisposed, EventFreed})
}

func TestEventTypeString(t *testing.T) {
	cases := map[EventType]string{
		EventAcquired:  "acquired",
		EventDisposed:  "disposed",
		EventFreed:     "freed",
		EventType(255): "unknown",
	}
	for et, want := range cases {
		if et.String() != want {
			t.Errorf("String() = %q, want %q", et.String(), want)
		}
	}
}
