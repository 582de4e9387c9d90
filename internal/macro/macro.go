// Package macro keeps the svut_h.sv support header in sync: every
// testbench includes it, so an up-to-date copy is placed in the working
// directory before the batch starts.
package macro

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"svut/pkg/logging"
)

const subsystem = "macro"

// HeaderName is the file testbenches include.
const HeaderName = "svut_h.sv"

//go:embed svut_h.sv
var headerContents []byte

// Sync writes the bundled svut_h.sv into dir when it is missing or differs
// from the bundled copy. An identical file is left untouched.
func Sync(dir string) error {
	path := filepath.Join(dir, HeaderName)

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, headerContents) {
		return nil
	}

	logging.Info(subsystem, "Copy up-to-date version of %s", HeaderName)
	if err := os.WriteFile(path, headerContents, 0644); err != nil {
		return fmt.Errorf("failed to install %s: %w", HeaderName, err)
	}
	return nil
}
