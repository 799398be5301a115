package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for cmdx
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdx",
		Short: "Small reimplementations of core file utilities",
		Long: `cmdx bundles small command-line utilities.

ls lists files and directory contents; echo prints its arguments.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main reports errors and chooses the exit code
		SilenceErrors: true,
	}

	cmd.AddCommand(NewLsCommand())
	cmd.AddCommand(NewEchoCommand())

	return cmd
}
