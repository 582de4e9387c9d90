// Package simulator builds per-testbench command pipelines for the
// supported simulator backends. Each backend translates the option model
// plus one testbench target into an ordered list of compile/run commands;
// nothing in this package executes anything.
package simulator

import (
	"os"
	"path/filepath"
	"strings"

	"svut/internal/config"
)

// For mocking in tests
var fileExists = func(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Target is a single testbench file plus its derived identifier, used to
// namespace build artifacts.
type Target struct {
	Path string
	Name string
}

// NewTarget derives the target identifier from the file name: the base name
// up to the first dot, matching the artifact naming of the backends.
func NewTarget(path string) Target {
	base := filepath.Base(path)
	name := base
	if idx := strings.Index(base, "."); idx >= 0 {
		name = base[:idx]
	}
	return Target{Path: path, Name: name}
}

// PipelineBuilder is the per-backend strategy: probe for a prior build
// artifact, then translate options plus one target into the ordered
// command list.
type PipelineBuilder interface {
	// ArtifactExists reports whether a prior build output for the target
	// is present on disk. This is the only external state consulted while
	// building a pipeline.
	ArtifactExists(target Target) bool

	// BuildPipeline produces the ordered compile/run commands for one
	// target. A run-only request with no prior artifact is promoted to a
	// full build-and-run; compile-only suppresses the run step.
	BuildPipeline(opts *config.Options, target Target, artifactExists bool) []Command
}

// ForSimulator selects the backend strategy once, during setup. The option
// model guarantees the simulator value is one of the two known backends.
func ForSimulator(sim config.Simulator) PipelineBuilder {
	if sim == config.SimulatorVerilator {
		return &VerilatorBackend{}
	}
	return &IcarusBackend{}
}

// defineFlags renders a ";"-separated define list into one -D flag per
// nonempty token, order preserved.
func defineFlags(defines string) []string {
	if defines == "" {
		return nil
	}

	var flags []string
	for _, def := range strings.Split(defines, ";") {
		if def != "" {
			flags = append(flags, "-D"+def)
		}
	}
	return flags
}

// existingManifests filters the manifest list down to files present on
// disk. Nonexistent entries are optional and dropped without error.
func existingManifests(paths []string) []string {
	var existing []string
	for _, path := range paths {
		if fileExists(path) {
			existing = append(existing, path)
		}
	}
	return existing
}

// effectiveMode applies the shared artifact rule: a missing artifact always
// forces a (re)build, silently downgrading run-only to a normal flow.
func effectiveMode(mode config.Mode, artifactExists bool) config.Mode {
	if mode == config.ModeRunOnly && !artifactExists {
		return config.ModeNormal
	}
	return mode
}
