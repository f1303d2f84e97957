// Package trace provides lifecycle instrumentation for rc handles.
//
// Registry aggregates ownership block events into counters suitable for
// leak detection and metrics export:
//
//	reg := trace.NewRegistry(logger)
//	rc.SetObserver(reg)
//	...
//	if err := reg.Verify(); err != nil {
//	    log.Fatal(err) // blocks or values still outstanding
//	}
//
// Counter is the per-type instrumentation collaborator for tests: a
// managed value embeds an Instance, and the counter then knows exactly
// how many instances are alive. The core guarantees the count drops to
// zero the moment the last owning handle to each value is gone, no
// matter how many weak handles remain:
//
//	var widgets trace.Counter
//	type widget struct {
//	    trace.Instance
//	    n int
//	}
//	p, _ := rc.Make(widget{Instance: widgets.NewInstance(), n: 42})
//	p.Release()
//	widgets.Verify() // nil: nothing outstanding
package trace
