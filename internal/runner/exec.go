package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"svut/internal/simulator"
)

// ShellExecutor runs commands through the system shell, streaming simulator
// output straight to the user's terminal. Simulator invocations rely on
// shell-level constructs in user-provided arguments (e.g. plusargs), so the
// flattened command line is handed to "sh -c" as a whole.
type ShellExecutor struct{}

// Execute runs the command and blocks until it finishes. There is no
// timeout: a hung simulator blocks the batch, matching the interactive
// nature of the tool.
func (ShellExecutor) Execute(ctx context.Context, cmd simulator.Command) error {
	shellCmd := exec.CommandContext(ctx, "sh", "-c", cmd.String())
	shellCmd.Stdout = os.Stdout
	shellCmd.Stderr = os.Stderr
	shellCmd.Stdin = os.Stdin

	if err := shellCmd.Run(); err != nil {
		return fmt.Errorf("failed to execute %q: %w", cmd.String(), err)
	}
	return nil
}
