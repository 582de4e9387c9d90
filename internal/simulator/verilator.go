package simulator

import (
	"svut/internal/config"
)

// verilatorBuildDir is the Verilator object directory. Unlike the Icarus
// flow, artifacts inside it are namespaced per testbench, so several
// testbenches can share the tree.
const verilatorBuildDir = "build"

// VerilatorBackend drives the two-phase Verilator flow: verilator
// translates the testbench into C++, builds it together with the native
// harness, and the resulting per-testbench binary is executed directly.
type VerilatorBackend struct{}

func (b *VerilatorBackend) ArtifactExists(target Target) bool {
	return fileExists(verilatorBuildDir + "/V" + target.Name + ".mk")
}

func (b *VerilatorBackend) BuildPipeline(opts *config.Options, target Target, artifactExists bool) []Command {
	mode := effectiveMode(opts.Mode, artifactExists)

	var cmds []Command

	if mode != config.ModeRunOnly {
		args := []string{
			"-Wall", "--trace", "--Mdir", verilatorBuildDir,
			"+1800-2012ext+sv", "+1800-2005ext+v",
			"-Wno-STMTDLY", "-Wno-UNUSED", "-Wno-UNDRIVEN", "-Wno-PINCONNECTEMPTY",
			"-Wpedantic", "-Wno-VARHIDDEN", "-Wno-lint",
		}
		args = append(args, defineFlags(opts.Defines)...)

		if manifests := existingManifests(opts.Manifests); len(manifests) > 0 {
			args = append(args, "-f")
			args = append(args, manifests...)
		}

		// Verilator takes one +incdir+ flag per directory
		for _, inc := range opts.Includes {
			args = append(args, "+incdir+"+inc)
		}

		args = append(args, "-cc", "--exe", "--build", "-j",
			"--top-module", target.Name, target.Path, opts.MainSource)
		cmds = append(cmds, Command{Program: "verilator", Args: args})
	}

	if mode != config.ModeCompileOnly {
		cmds = append(cmds, Command{Program: verilatorBuildDir + "/V" + target.Name})
	}

	return cmds
}
