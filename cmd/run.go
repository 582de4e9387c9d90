package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svut/internal/config"
	"svut/internal/discovery"
	"svut/internal/macro"
	"svut/internal/orchestrator"
	"svut/internal/reporting"
	"svut/internal/runner"
)

// allSelector is the literal -test value meaning "discover every testbench
// in the current directory".
const allSelector = "all"

// For mocking in tests
var osExit = os.Exit

var (
	runSimulator   string
	runTests       []string
	runManifests   []string
	runIncludes    []string
	runDefines     string
	runVPI         string
	runMainSource  string
	runRunOnly     bool
	runCompileOnly bool
	runDryRun      bool
	runNoSplash    bool
)

// runCmd is the main command of svut: it resolves the option model, builds
// the per-testbench simulator pipelines and executes them sequentially.
// The process exit code is the total number of failed commands across the
// batch, so scripts and CI can consume it directly.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile and run the selected testbenches",
	Long: `Builds a simulator command pipeline (compile step + execute step) for
each selected testbench and runs them one after the other.

Testbenches are either passed explicitly with --test, or discovered in the
current directory when --test is "all" (the default). Discovery recognizes
the conventional svut file names (tb_*, *_unit_test.sv, ...).

Defaults for the simulator, file lists, defines and include paths can be
placed in .svut/config.yaml (project) or ~/.config/svut/config.yaml (user);
command-line flags override both.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

// runRun is the main entry point for the run command
func runRun(cmd *cobra.Command, args []string) error {
	raw, err := assembleRawOptions(cmd)
	if err != nil {
		return err
	}

	// Expand the "all" selector through directory discovery before
	// validation, so the single-target mode checks see real paths.
	if len(raw.Tests) == 1 && raw.Tests[0] == allSelector {
		raw.Tests, err = discovery.FindTestbenches(".")
		if err != nil {
			return err
		}
	}

	opts, err := config.Validate(raw)
	if err != nil {
		return err
	}

	console := reporting.NewConsole(cmd.OutOrStdout())
	if !opts.NoSplash {
		console.Banner(rootCmd.Version)
	}

	switch opts.Simulator {
	case config.SimulatorVerilator:
		console.Event("Run with Verilator")
	default:
		console.Event("Run with Icarus Verilog")
	}

	// Testbenches include svut_h.sv; keep the local copy current
	if err := macro.Sync("."); err != nil {
		return err
	}

	run := runner.New(runner.ShellExecutor{}, console, opts.DryRun)
	outcome, err := orchestrator.New(opts, run, console).RunAll(cmd.Context())
	if err != nil {
		return err
	}

	console.Summary(outcome.Results, outcome.Elapsed)

	if outcome.Failures > 0 {
		osExit(outcome.Failures)
	}
	return nil
}

// assembleRawOptions layers command-line flags over the YAML configuration
// files. A flag only overrides the file layers when the user actually set
// it.
func assembleRawOptions(cmd *cobra.Command) (config.RawOptions, error) {
	fileCfg, err := config.LoadFileConfig()
	if err != nil {
		return config.RawOptions{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	raw := config.RawOptions{
		Simulator:   fileCfg.Simulator,
		Tests:       runTests,
		Manifests:   fileCfg.Manifests,
		Includes:    fileCfg.Includes,
		Defines:     fileCfg.Defines,
		VPI:         fileCfg.VPI,
		MainSource:  fileCfg.Main,
		RunOnly:     runRunOnly,
		CompileOnly: runCompileOnly,
		DryRun:      runDryRun,
		NoSplash:    runNoSplash || fileCfg.NoSplash,
	}

	flags := cmd.Flags()
	if flags.Changed("sim") {
		raw.Simulator = runSimulator
	}
	if flags.Changed("file-list") {
		raw.Manifests = runManifests
	}
	if flags.Changed("include") {
		raw.Includes = runIncludes
	}
	if flags.Changed("define") {
		raw.Defines = runDefines
	}
	if flags.Changed("vpi") {
		raw.VPI = runVPI
	}
	if flags.Changed("main") {
		raw.MainSource = runMainSource
	}

	return raw, nil
}

func newRunCmd() *cobra.Command {
	runCmd.Flags().StringVar(&runSimulator, "sim", config.DefaultSimulator, "The simulator to use, icarus or verilator")
	runCmd.Flags().StringSliceVar(&runTests, "test", []string{allSelector}, "Testbench file(s) to run, or \"all\" to discover them")
	runCmd.Flags().StringSliceVarP(&runManifests, "file-list", "f", []string{config.DefaultManifest}, "File list (*.f) with sources, incdirs and defines")
	runCmd.Flags().StringSliceVar(&runIncludes, "include", nil, "Include folder(s); can be used along a file list")
	runCmd.Flags().StringVar(&runDefines, "define", "", `A list of defines separated by ";", ex: "DEF1=2;DEF2;DEF3=3"`)
	runCmd.Flags().StringVar(&runVPI, "vpi", "", `Arguments passed as-is to vvp (Icarus only), ex: "-M. -mMyVPI"`)
	runCmd.Flags().StringVar(&runMainSource, "main", config.DefaultMainSource, "Verilator C++ main file, like sim_main.cpp")
	runCmd.Flags().BoolVar(&runRunOnly, "run-only", false, "Only run the existing executable, but build it if not present")
	runCmd.Flags().BoolVar(&runCompileOnly, "compile-only", false, "Only prepare the testbench executable")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Just print the commands, don't execute them")
	runCmd.Flags().BoolVar(&runNoSplash, "no-splash", false, "Don't print the banner when executing")
	return runCmd
}
