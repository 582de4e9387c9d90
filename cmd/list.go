package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svut/internal/discovery"
)

// listCmd prints the testbenches the "all" selector would pick up, without
// running anything. Useful to check the naming conventions are matched.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the testbenches discovered in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := discovery.FindTestbenches(".")
		if err != nil {
			return err
		}

		if len(files) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No testbench found")
			return nil
		}
		for _, file := range files {
			fmt.Fprintln(cmd.OutOrStdout(), file)
		}
		return nil
	},
}

func newListCmd() *cobra.Command {
	return listCmd
}
