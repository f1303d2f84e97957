package trace

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/sharedref/errors"
	"github.com/wippyai/sharedref/rc"
)

// Registry aggregates block lifecycle events into running counters.
// It implements rc.Observer; install it with rc.SetObserver.
//
// The rc package is single-threaded, but a Registry may be read from
// other goroutines (a metrics scraper, a debug endpoint), so it guards
// its own state. It never calls back into handle operations.
type Registry struct {
	mu       sync.Mutex
	logger   *zap.Logger
	acquired uint64
	disposed uint64
	freed    uint64
}

// NewRegistry creates a registry logging events at debug level through
// logger; a nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger}
}

// OnBlockEvent implements rc.Observer.
func (r *Registry) OnBlockEvent(e rc.Event) {
	r.mu.Lock()
	switch e.Type {
	case rc.EventAcquired:
		r.acquired++
	case rc.EventDisposed:
		r.disposed++
	case rc.EventFreed:
		r.freed++
	}
	r.mu.Unlock()

	r.logger.Debug("block event",
		zap.Stringer("event", e.Type),
		zap.Uint("strong", e.Strong),
		zap.Uint("weak", e.Weak),
	)
}

// Stats is a point-in-time snapshot of the registry's counters.
type Stats struct {
	Acquired uint64 // blocks ever created
	Disposed uint64 // values disposed
	Freed    uint64 // blocks deallocated

	LiveBlocks uint64 // blocks not yet freed (weak-pinned ones included)
	LiveValues uint64 // values not yet disposed
}

// Stats returns a snapshot of the counters.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		Acquired:   r.acquired,
		Disposed:   r.disposed,
		Freed:      r.freed,
		LiveBlocks: r.acquired - r.freed,
		LiveValues: r.acquired - r.disposed,
	}
}

// Verify reports outstanding values and blocks as an aggregated error,
// nil when everything acquired has been disposed and freed.
func (r *Registry) Verify() error {
	st := r.Stats()
	var err error
	if st.LiveValues > 0 {
		err = multierr.Append(err, errors.Leaked("managed values", int(st.LiveValues)))
	}
	if st.LiveBlocks > 0 {
		err = multierr.Append(err, errors.Leaked("ownership blocks", int(st.LiveBlocks)))
	}
	return err
}
