// Package runner executes one testbench's command pipeline: commands run in
// order, the first failure aborts the remainder of that pipeline, and the
// wall-clock span is reported alongside the failure count.
package runner

import (
	"context"
	"time"

	"svut/internal/reporting"
	"svut/internal/simulator"
	"svut/pkg/logging"
)

const subsystem = "runner"

// Executor runs a fully-formed command and reports success or failure via
// the returned error. The production implementation shells out; tests
// substitute a scripted one.
type Executor interface {
	Execute(ctx context.Context, cmd simulator.Command) error
}

// Outcome is the result of running one pipeline.
type Outcome struct {
	// Failures counts commands that exited nonzero. At most 1 per
	// pipeline since the first failure aborts the remaining steps.
	Failures int
	// Elapsed spans from just before the first command to just after the
	// last executed one. Zero for dry runs.
	Elapsed time.Duration
}

// Runner drives pipelines through an Executor.
type Runner struct {
	executor Executor
	reporter reporting.Reporter
	dryRun   bool
}

// New creates a Runner. When dryRun is set, commands are surfaced through
// the reporter but never handed to the executor.
func New(executor Executor, reporter reporting.Reporter, dryRun bool) *Runner {
	return &Runner{
		executor: executor,
		reporter: reporter,
		dryRun:   dryRun,
	}
}

// Run executes the pipeline for one testbench. A nonzero exit aborts the
// remaining commands of this pipeline only; the caller decides whether to
// continue with other testbenches.
func (r *Runner) Run(ctx context.Context, pipeline []simulator.Command) Outcome {
	if r.dryRun {
		for _, cmd := range pipeline {
			r.reporter.Event("%s", cmd)
		}
		return Outcome{}
	}

	outcome := Outcome{}
	start := time.Now()

	for _, cmd := range pipeline {
		r.reporter.Event("%s", cmd)

		if err := r.executor.Execute(ctx, cmd); err != nil {
			outcome.Failures++
			logging.Error(subsystem, err, "Command failed: %s", cmd)
			break
		}
	}

	outcome.Elapsed = time.Since(start)
	return outcome
}
