package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"svut/internal/reporting"
)

const projectURL = "https://github.com/dpretet/svut"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of svut",
		Long:  `All software has versions. This is svut's.`,
		Run: func(cmd *cobra.Command, args []string) {
			console := reporting.NewConsole(cmd.OutOrStdout())
			console.Banner(rootCmd.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n\n", projectURL)
		},
	}
}
