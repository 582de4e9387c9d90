package config

const (
	// DefaultSimulator is used when neither flags nor config files name one.
	DefaultSimulator = "icarus"

	// DefaultManifest is the conventional file-list name picked up when the
	// user passes no -f flag.
	DefaultManifest = "files.f"

	// DefaultMainSource is the conventional Verilator C++ harness name.
	DefaultMainSource = "sim_main.cpp"
)

// GetDefaultFileConfig returns the base configuration layer that user and
// project files are merged over.
func GetDefaultFileConfig() FileConfig {
	return FileConfig{
		Simulator: DefaultSimulator,
		Manifests: []string{DefaultManifest},
		Main:      DefaultMainSource,
	}
}
