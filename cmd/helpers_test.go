package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

// newTestRootCommand creates a root command running runFn, with the given
// subcommands attached, for testing
func newTestRootCommand(runFn func(*cobra.Command, []string) error, subs ...*cobra.Command) *cobra.Command {
	cmd := newRootCommand(runFn)
	cmd.AddCommand(subs...)
	return cmd
}

// executeCommand executes a command and returns its output
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// executeCommandSplit executes a command keeping stdout and stderr apart
func executeCommandSplit(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
