// Package cli holds the command line plumbing shared by the embed binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/esimov/svgembed"
	"github.com/esimov/svgembed/utils"
	"github.com/spf13/cobra"
)

// PipeName is the file name that indicates stdin/stdout is being used.
const PipeName = "-"

// PositionalArgs accepts exactly the <input> and <output> arguments.
func PositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <input> <output>, got %d argument(s)", svgembed.ErrUsage, len(args))
	}
	return nil
}

// flagError marks the flag parsing failures as usage errors.
func flagError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", svgembed.ErrUsage, err)
}

// NewLogger returns the prefix-less logger used for warnings and errors.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

// Ops builds the embedding operation from the positional arguments.
func Ops(cmd *cobra.Command, args []string) *svgembed.Ops {
	return &svgembed.Ops{
		Src:      args[0],
		Dst:      args[1],
		PipeName: PipeName,
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
	}
}

// PrintCreated reports the created document, unless it has been written to stdout.
func PrintCreated(cmd *cobra.Command, op *svgembed.Ops) {
	if op.IsPipe() {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "SVG created: %s\n", utils.Colorize(out, op.Dst, utils.SuccessMessage))
}

// Run executes the command with the given arguments and returns the process exit status.
func Run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetFlagErrorFunc(flagError)

	err := cmd.Execute()
	if err != nil {
		logger := NewLogger(stderr)
		logger.Println(utils.Colorize(stderr, "Error: "+err.Error(), utils.ErrorMessage))
		if errors.Is(err, svgembed.ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
	}
	return svgembed.ExitCode(err)
}
