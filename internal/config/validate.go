package config

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors are fatal: they are reported before any simulator
// command is built and terminate the whole run.
var (
	ErrUnsupportedSimulator     = errors.New("simulator not supported")
	ErrMissingTestcase          = errors.New("no testcase passed")
	ErrConflictingModes         = errors.New("compile-only and run-only are mutually exclusive")
	ErrModeRequiresSingleTarget = errors.New("compile-only or run-only can't be used with multiple testbenches")
)

// RawOptions carries user input (flags merged over config-file layers)
// before cross-field validation.
type RawOptions struct {
	Simulator   string
	Tests       []string
	Manifests   []string
	Includes    []string
	Defines     string
	VPI         string
	MainSource  string
	RunOnly     bool
	CompileOnly bool
	DryRun      bool
	NoSplash    bool
}

// ParseSimulator resolves a simulator name to a backend. Matching is by
// case-insensitive substring: anything mentioning "iverilog" or "icarus"
// selects Icarus, anything mentioning "verilator" selects Verilator.
func ParseSimulator(name string) (Simulator, error) {
	lowered := strings.ToLower(name)
	switch {
	case strings.Contains(lowered, "iverilog") || strings.Contains(lowered, "icarus"):
		return SimulatorIcarus, nil
	case strings.Contains(lowered, "verilator"):
		return SimulatorVerilator, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSimulator, name)
	}
}

// Validate checks raw user input for consistency and produces the immutable
// option model. Tests must already be resolved to concrete paths (the "all"
// selector is expanded by discovery before validation).
func Validate(raw RawOptions) (*Options, error) {
	sim, err := ParseSimulator(raw.Simulator)
	if err != nil {
		return nil, err
	}

	if len(raw.Tests) == 0 {
		return nil, ErrMissingTestcase
	}

	if raw.CompileOnly && raw.RunOnly {
		return nil, ErrConflictingModes
	}

	mode := ModeNormal
	switch {
	case raw.CompileOnly:
		mode = ModeCompileOnly
	case raw.RunOnly:
		mode = ModeRunOnly
	}

	if mode != ModeNormal && len(raw.Tests) > 1 {
		return nil, fmt.Errorf("%w: got %d targets", ErrModeRequiresSingleTarget, len(raw.Tests))
	}

	return &Options{
		Simulator:  sim,
		Mode:       mode,
		Tests:      raw.Tests,
		Manifests:  raw.Manifests,
		Includes:   raw.Includes,
		Defines:    raw.Defines,
		VPI:        raw.VPI,
		MainSource: raw.MainSource,
		DryRun:     raw.DryRun,
		NoSplash:   raw.NoSplash,
	}, nil
}
