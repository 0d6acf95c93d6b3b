package main

import (
	"fmt"
	"os"

	"github.com/esimov/svgembed"
	"github.com/esimov/svgembed/internal/cli"
	"github.com/spf13/cobra"
)

// Version indicates the current build version.
var Version string

func main() {
	os.Exit(cli.Run(newRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

// newRootCmd creates the plain embedder command.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embed <input> <output>",
		Short: "Embed a PNG/JPEG image unmodified inside a 648x648 SVG document",
		Long: fmt.Sprintf(`Embed a PNG/JPEG image unmodified inside a 648x648 SVG document.
    Version: %s

The image is base64 encoded into a data URI and referenced from a single <image> element.
Use - as input or output to read from stdin or write to stdout.

Example:
  embed logo.png logo.svg`, Version),
		Args: cli.PositionalArgs,
		RunE: runEmbed,
	}
}

func runEmbed(cmd *cobra.Command, args []string) error {
	proc := &svgembed.Processor{
		Mode:   svgembed.Plain,
		Config: svgembed.DefaultConfig(),
		Logger: cli.NewLogger(cmd.ErrOrStderr()),
	}

	op := cli.Ops(cmd, args)
	if err := proc.Execute(op); err != nil {
		return err
	}
	cli.PrintCreated(cmd, op)

	return nil
}
