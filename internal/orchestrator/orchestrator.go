// Package orchestrator iterates the pipeline runner over the selected
// testbench set: it validates targets up front, picks the backend strategy,
// and folds per-testbench outcomes into the batch result.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"svut/internal/config"
	"svut/internal/reporting"
	"svut/internal/runner"
	"svut/internal/simulator"
	"svut/pkg/logging"
)

const subsystem = "orchestrator"

// ErrUnsupportedExtension is returned for testbench arguments that are not
// Verilog or SystemVerilog sources. It aborts the whole batch before any
// simulator command is built.
var ErrUnsupportedExtension = errors.New("unsupported extension, must use either *.v or *.sv")

// BatchOutcome aggregates a whole run. Failures is the process exit code:
// zero means every testbench passed.
type BatchOutcome struct {
	Failures int
	Elapsed  time.Duration
	Results  []reporting.Result
}

// Orchestrator runs the full testbench batch, one pipeline at a time.
// Execution is strictly sequential: the Icarus flow shares a single build
// artifact across testbenches, so pipelines must never overlap.
type Orchestrator struct {
	opts     *config.Options
	builder  simulator.PipelineBuilder
	runner   *runner.Runner
	reporter reporting.Reporter
}

// New assembles an orchestrator. The backend strategy is selected once from
// the option model rather than re-derived per testbench.
func New(opts *config.Options, run *runner.Runner, reporter reporting.Reporter) *Orchestrator {
	return &Orchestrator{
		opts:     opts,
		builder:  simulator.ForSimulator(opts.Simulator),
		runner:   run,
		reporter: reporter,
	}
}

// RunAll validates every target, then builds and runs each testbench's
// pipeline in order. A failing testbench is recorded and the batch moves
// on; only target validation aborts the whole run.
func (o *Orchestrator) RunAll(ctx context.Context) (*BatchOutcome, error) {
	if err := validateExtensions(o.opts.Tests); err != nil {
		return nil, err
	}

	outcome := &BatchOutcome{}
	start := time.Now()

	for _, test := range o.opts.Tests {
		target := simulator.NewTarget(test)

		artifactExists := o.builder.ArtifactExists(target)
		if o.opts.Mode == config.ModeRunOnly && !artifactExists {
			logging.Warn(subsystem, "Testbench executable not found. Will build it")
		}

		pipeline := o.builder.BuildPipeline(o.opts, target, artifactExists)

		o.reporter.Event("Start %s", test)
		result := o.runner.Run(ctx, pipeline)
		o.reporter.Event("Stop %s", test)

		outcome.Failures += result.Failures
		outcome.Results = append(outcome.Results, reporting.Result{
			Test:    test,
			Passed:  result.Failures == 0,
			Elapsed: result.Elapsed,
		})
	}

	outcome.Elapsed = time.Since(start)
	return outcome, nil
}

func validateExtensions(tests []string) error {
	for _, test := range tests {
		if !strings.HasSuffix(test, ".v") && !strings.HasSuffix(test, ".sv") {
			return fmt.Errorf("%w: %s", ErrUnsupportedExtension, test)
		}
	}
	return nil
}
