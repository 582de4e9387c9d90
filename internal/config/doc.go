// Package config holds the validated option model for a svut batch run.
//
// The model is assembled once, from layered YAML configuration files and
// command-line flags, validated, and then treated as immutable for the
// lifetime of the batch. All cross-flag consistency rules live here:
// simulator recognition, execution-mode exclusivity, and the
// single-target restriction on compile-only and run-only modes.
package config
