// Package reporting renders user-facing output for a batch run: the
// timestamped event stream, the startup banner, and the end-of-batch
// result summary.
package reporting

import "time"

// Reporter receives the human-readable event stream of a run.
type Reporter interface {
	Event(format string, args ...interface{})
}

// Result is the terminal state of one testbench.
type Result struct {
	Test    string
	Passed  bool
	Elapsed time.Duration
}
