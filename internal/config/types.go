package config

// Simulator identifies one of the supported simulator backends.
type Simulator int

const (
	// SimulatorIcarus is the Icarus Verilog flow (iverilog + vvp).
	SimulatorIcarus Simulator = iota
	// SimulatorVerilator is the Verilator flow (verilated C++ binary).
	SimulatorVerilator
)

// String makes Simulator satisfy the fmt.Stringer interface.
func (s Simulator) String() string {
	switch s {
	case SimulatorIcarus:
		return "icarus"
	case SimulatorVerilator:
		return "verilator"
	default:
		return "unknown"
	}
}

// Mode selects which pipeline steps are produced for a testbench.
type Mode int

const (
	// ModeNormal compiles and runs every testbench.
	ModeNormal Mode = iota
	// ModeCompileOnly builds the testbench executable without running it.
	ModeCompileOnly
	// ModeRunOnly runs an existing executable, building it first only
	// when no prior build artifact is present.
	ModeRunOnly
)

// String makes Mode satisfy the fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCompileOnly:
		return "compile-only"
	case ModeRunOnly:
		return "run-only"
	default:
		return "unknown"
	}
}

// Options is the validated, immutable configuration bundle for one batch
// run. Build it through Validate; do not mutate it afterwards.
type Options struct {
	Simulator Simulator
	Mode      Mode

	// Tests is the resolved testbench selector: explicit paths from the
	// command line, or the result of directory discovery when the user
	// asked for "all".
	Tests []string

	// Manifests lists file-list (*.f) paths fed to the compile step.
	// Entries that do not exist on disk are skipped without error.
	Manifests []string

	// Includes lists include directories for the compile step.
	Includes []string

	// Defines is a ";"-separated list of NAME or NAME=VALUE tokens.
	Defines string

	// VPI is passed through verbatim to the Icarus runtime (vvp), e.g.
	// "-M. -mMyVPI". The Verilator backend ignores it.
	VPI string

	// MainSource is the C++ harness compiled alongside the testbench by
	// the Verilator backend. Unused by Icarus.
	MainSource string

	DryRun   bool
	NoSplash bool
}

// FileConfig mirrors the YAML configuration file layout. Zero values mean
// "not set" and are skipped when merging layers.
type FileConfig struct {
	Simulator string   `yaml:"simulator,omitempty"`
	Manifests []string `yaml:"manifests,omitempty"`
	Includes  []string `yaml:"includes,omitempty"`
	Defines   string   `yaml:"defines,omitempty"`
	VPI       string   `yaml:"vpi,omitempty"`
	Main      string   `yaml:"main,omitempty"`
	NoSplash  bool     `yaml:"noSplash,omitempty"`
}
