package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewEchoCommand creates the echo command
func NewEchoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo [-n] [string]...",
		Short: "Display a line of text",
		Long: `Print the arguments separated by single spaces, followed by a newline.

Examples:
  cmdx echo hello world     # "hello world\n"
  cmdx echo -n hello world  # "hello world"`,
		RunE: runEcho,
	}

	cmd.Flags().BoolP("no-newline", "n", false, "Do not output the trailing newline")

	return cmd
}

func runEcho(cmd *cobra.Command, args []string) error {
	noNewline, _ := cmd.Flags().GetBool("no-newline")
	_, err := fmt.Fprint(cmd.OutOrStdout(), echoString(args, noNewline))
	return err
}

// echoString joins args with single spaces and appends a newline unless noNewline is set.
func echoString(args []string, noNewline bool) string {
	out := strings.Join(args, " ")
	if !noNewline {
		out += "\n"
	}
	return out
}
