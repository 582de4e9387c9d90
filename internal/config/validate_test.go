package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawOptions {
	return RawOptions{
		Simulator:  "icarus",
		Tests:      []string{"tb_adder.v"},
		Manifests:  []string{DefaultManifest},
		MainSource: DefaultMainSource,
	}
}

func TestParseSimulator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Simulator
	}{
		{"plain icarus", "icarus", SimulatorIcarus},
		{"iverilog binary name", "iverilog", SimulatorIcarus},
		{"substring match", "my-icarus-build", SimulatorIcarus},
		{"mixed case", "Icarus", SimulatorIcarus},
		{"verilator", "verilator", SimulatorVerilator},
		{"versioned verilator", "verilator-5.020", SimulatorVerilator},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSimulator(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSimulator_Unsupported(t *testing.T) {
	_, err := ParseSimulator("modelsim")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSimulator)
}

func TestValidate_Defaults(t *testing.T) {
	opts, err := Validate(validRaw())
	require.NoError(t, err)

	assert.Equal(t, SimulatorIcarus, opts.Simulator)
	assert.Equal(t, ModeNormal, opts.Mode)
	assert.Equal(t, []string{"tb_adder.v"}, opts.Tests)
}

func TestValidate_MissingTestcase(t *testing.T) {
	raw := validRaw()
	raw.Tests = nil

	_, err := Validate(raw)
	assert.ErrorIs(t, err, ErrMissingTestcase)
}

func TestValidate_ConflictingModes(t *testing.T) {
	raw := validRaw()
	raw.CompileOnly = true
	raw.RunOnly = true

	_, err := Validate(raw)
	assert.ErrorIs(t, err, ErrConflictingModes)
}

func TestValidate_ModeRequiresSingleTarget(t *testing.T) {
	for _, mode := range []string{"run-only", "compile-only"} {
		t.Run(mode, func(t *testing.T) {
			raw := validRaw()
			raw.Tests = []string{"tb_adder.v", "tb_alu.sv"}
			if mode == "run-only" {
				raw.RunOnly = true
			} else {
				raw.CompileOnly = true
			}

			_, err := Validate(raw)
			assert.ErrorIs(t, err, ErrModeRequiresSingleTarget)
		})
	}
}

func TestValidate_SingleTargetModes(t *testing.T) {
	raw := validRaw()
	raw.RunOnly = true

	opts, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, ModeRunOnly, opts.Mode)

	raw = validRaw()
	raw.CompileOnly = true

	opts, err = Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, ModeCompileOnly, opts.Mode)
}
