package rc

import "go.uber.org/zap"

// EventType identifies a point in an ownership block's lifecycle.
type EventType uint8

const (
	// EventAcquired fires when a block is created with strong count 1.
	EventAcquired EventType = iota
	// EventDisposed fires after the managed value has been disposed.
	EventDisposed
	// EventFreed fires when the block itself is deallocated.
	EventFreed
)

func (t EventType) String() string {
	switch t {
	case EventAcquired:
		return "acquired"
	case EventDisposed:
		return "disposed"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Event is a snapshot of a block at a lifecycle transition.
type Event struct {
	Type   EventType
	Strong uint
	Weak   uint
}

// Observer receives block lifecycle events. Observers are called
// synchronously from handle operations and must not call back into
// handle operations on the same block.
type Observer interface {
	OnBlockEvent(Event)
}

var observer Observer

// SetObserver installs the package-wide lifecycle observer. Pass nil to
// remove it. Like the handles themselves, this is single-threaded:
// install the observer before creating handles.
func SetObserver(o Observer) { observer = o }

func observe(t EventType, b *block) {
	if logger != nil {
		logger.Debug("block event",
			zap.Stringer("event", t),
			zap.Uint("strong", b.strong),
			zap.Uint("weak", b.weak),
		)
	}
	if observer != nil {
		observer.OnBlockEvent(Event{Type: t, Strong: b.strong, Weak: b.weak})
	}
}
