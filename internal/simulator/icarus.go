package simulator

import (
	"strings"

	"svut/internal/config"
)

// IcarusArtifact is the fixed executable name shared by every testbench in
// the Icarus flow. Consecutive testbenches overwrite it, which is safe only
// because the batch runs strictly sequentially.
const IcarusArtifact = "svut.out"

// IcarusBackend drives the direct-compile Icarus Verilog flow: iverilog
// compiles everything into one executable, vvp runs it.
type IcarusBackend struct{}

func (b *IcarusBackend) ArtifactExists(target Target) bool {
	return fileExists(IcarusArtifact)
}

func (b *IcarusBackend) BuildPipeline(opts *config.Options, target Target, artifactExists bool) []Command {
	mode := effectiveMode(opts.Mode, artifactExists)

	var cmds []Command

	if mode != config.ModeRunOnly {
		args := []string{"-g2012", "-Wall", "-o", IcarusArtifact}
		args = append(args, defineFlags(opts.Defines)...)

		if manifests := existingManifests(opts.Manifests); len(manifests) > 0 {
			args = append(args, "-f")
			args = append(args, manifests...)
		}

		if len(opts.Includes) > 0 {
			args = append(args, "-I")
			args = append(args, opts.Includes...)
		}

		args = append(args, target.Path)
		cmds = append(cmds, Command{Program: "iverilog", Args: args})
	}

	if mode != config.ModeCompileOnly {
		var args []string
		if opts.VPI != "" {
			args = append(args, strings.Fields(opts.VPI)...)
		}
		args = append(args, IcarusArtifact)
		cmds = append(cmds, Command{Program: "vvp", Args: args})
	}

	return cmds
}
