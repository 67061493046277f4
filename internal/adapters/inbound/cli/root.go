package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrViolations is returned when a check ran to completion but found
// violations. It has already been reported, so it is not printed again.
var ErrViolations = errors.New("comment style violations found")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "commentstyle",
		Short:         "An opinionated comment style checker",
		Long:          "commentstyle checks that line comments read as capitalised, punctuated prose and that block and trailing comments are not used.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newCodesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command, printing any error other than
// ErrViolations to stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrViolations) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return err
}
