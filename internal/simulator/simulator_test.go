package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svut/internal/config"
)

// mockFiles replaces the filesystem probe with a fixed set of paths.
func mockFiles(t *testing.T, present ...string) {
	t.Helper()
	original := fileExists
	t.Cleanup(func() { fileExists = original })
	fileExists = func(path string) bool {
		for _, p := range present {
			if p == path {
				return true
			}
		}
		return false
	}
}

func TestNewTarget(t *testing.T) {
	tests := []struct {
		path string
		name string
	}{
		{"tb_adder.v", "tb_adder"},
		{"rtl/tb_alu.sv", "tb_alu"},
		{"tb_fifo.gen.sv", "tb_fifo"},
	}
	for _, tc := range tests {
		target := NewTarget(tc.path)
		assert.Equal(t, tc.path, target.Path)
		assert.Equal(t, tc.name, target.Name)
	}
}

func TestDefineFlags(t *testing.T) {
	assert.Nil(t, defineFlags(""))

	// Empty tokens are dropped, order is preserved
	flags := defineFlags("A;B=2;;C")
	assert.Equal(t, []string{"-DA", "-DB=2", "-DC"}, flags)
}

func TestForSimulator(t *testing.T) {
	assert.IsType(t, &IcarusBackend{}, ForSimulator(config.SimulatorIcarus))
	assert.IsType(t, &VerilatorBackend{}, ForSimulator(config.SimulatorVerilator))
}

func TestPipelineShape(t *testing.T) {
	mockFiles(t)

	backends := map[string]PipelineBuilder{
		"icarus":    &IcarusBackend{},
		"verilator": &VerilatorBackend{},
	}

	tests := []struct {
		name           string
		mode           config.Mode
		artifactExists bool
		wantSteps      int
	}{
		{"normal without artifact", config.ModeNormal, false, 2},
		{"normal always rebuilds", config.ModeNormal, true, 2},
		{"run-only with artifact skips compile", config.ModeRunOnly, true, 1},
		{"run-only without artifact is promoted", config.ModeRunOnly, false, 2},
		{"compile-only without artifact", config.ModeCompileOnly, false, 1},
		{"compile-only with artifact", config.ModeCompileOnly, true, 1},
	}

	for backendName, backend := range backends {
		for _, tc := range tests {
			t.Run(backendName+"/"+tc.name, func(t *testing.T) {
				opts := &config.Options{Mode: tc.mode, MainSource: "sim_main.cpp"}
				cmds := backend.BuildPipeline(opts, NewTarget("tb_adder.v"), tc.artifactExists)
				assert.Len(t, cmds, tc.wantSteps)
			})
		}
	}
}

func TestIcarusCompileCommand(t *testing.T) {
	mockFiles(t, "files.f")

	opts := &config.Options{
		Simulator: config.SimulatorIcarus,
		Mode:      config.ModeNormal,
		Defines:   "FOO=1",
		Manifests: []string{"files.f"},
	}

	cmds := (&IcarusBackend{}).BuildPipeline(opts, NewTarget("tb_adder.v"), false)
	require.Len(t, cmds, 2)

	compile := cmds[0]
	assert.Equal(t, "iverilog", compile.Program)
	assert.Contains(t, compile.Args, "-DFOO=1")
	assert.Contains(t, compile.String(), "-f files.f")
	assert.Equal(t, "tb_adder.v", compile.Args[len(compile.Args)-1])
	assert.Contains(t, compile.Args, "-o")
	assert.Contains(t, compile.Args, IcarusArtifact)

	execute := cmds[1]
	assert.Equal(t, "vvp", execute.Program)
	assert.Equal(t, []string{IcarusArtifact}, execute.Args)
}

func TestIcarusManifestFiltering(t *testing.T) {
	mockFiles(t, "exists.f")

	opts := &config.Options{
		Mode:      config.ModeCompileOnly,
		Manifests: []string{"exists.f", "missing.f"},
	}

	cmds := (&IcarusBackend{}).BuildPipeline(opts, NewTarget("tb_adder.v"), false)
	require.Len(t, cmds, 1)

	assert.Contains(t, cmds[0].Args, "exists.f")
	assert.NotContains(t, cmds[0].Args, "missing.f")
}

func TestIcarusIncludesJoined(t *testing.T) {
	mockFiles(t)

	opts := &config.Options{
		Mode:     config.ModeCompileOnly,
		Includes: []string{"rtl", "common"},
	}

	cmds := (&IcarusBackend{}).BuildPipeline(opts, NewTarget("tb_adder.v"), false)
	require.Len(t, cmds, 1)

	// Directories follow a single -I flag
	assert.Contains(t, cmds[0].String(), "-I rtl common")
}

func TestIcarusVPIPassThrough(t *testing.T) {
	mockFiles(t, IcarusArtifact)

	opts := &config.Options{
		Mode: config.ModeRunOnly,
		VPI:  "-M. -mMyVPI",
	}

	cmds := (&IcarusBackend{}).BuildPipeline(opts, NewTarget("tb_adder.v"), true)
	require.Len(t, cmds, 1)

	assert.Equal(t, "vvp", cmds[0].Program)
	assert.Equal(t, []string{"-M.", "-mMyVPI", IcarusArtifact}, cmds[0].Args)
}

func TestIcarusArtifactExists(t *testing.T) {
	mockFiles(t, IcarusArtifact)
	assert.True(t, (&IcarusBackend{}).ArtifactExists(NewTarget("tb_adder.v")))

	mockFiles(t)
	assert.False(t, (&IcarusBackend{}).ArtifactExists(NewTarget("tb_adder.v")))
}

func TestVerilatorCompileCommand(t *testing.T) {
	mockFiles(t)

	opts := &config.Options{
		Simulator:  config.SimulatorVerilator,
		Mode:       config.ModeNormal,
		Defines:    "WIDTH=8",
		Includes:   []string{"rtl", "common"},
		MainSource: "sim_main.cpp",
	}

	cmds := (&VerilatorBackend{}).BuildPipeline(opts, NewTarget("tb_alu.sv"), false)
	require.Len(t, cmds, 2)

	compile := cmds[0]
	assert.Equal(t, "verilator", compile.Program)
	assert.Contains(t, compile.Args, "-DWIDTH=8")
	// One +incdir+ flag per directory
	assert.Contains(t, compile.Args, "+incdir+rtl")
	assert.Contains(t, compile.Args, "+incdir+common")
	assert.Contains(t, compile.String(), "--top-module tb_alu")
	// The native harness is appended after the testbench source
	assert.Equal(t, "sim_main.cpp", compile.Args[len(compile.Args)-1])
	assert.Equal(t, "tb_alu.sv", compile.Args[len(compile.Args)-2])

	execute := cmds[1]
	assert.Equal(t, "build/Vtb_alu", execute.Program)
	assert.Empty(t, execute.Args)
}

func TestVerilatorArtifactNamespacing(t *testing.T) {
	mockFiles(t, "build/Vtb_adder.mk")

	backend := &VerilatorBackend{}
	assert.True(t, backend.ArtifactExists(NewTarget("tb_adder.v")))
	// A different testbench does not see tb_adder's artifact
	assert.False(t, backend.ArtifactExists(NewTarget("tb_alu.sv")))
}
