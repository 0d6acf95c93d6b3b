package main

import (
	"fmt"
	"os"
	"time"

	"github.com/esimov/svgembed"
	"github.com/esimov/svgembed/internal/cli"
	"github.com/esimov/svgembed/utils"
	"github.com/spf13/cobra"
)

// Version indicates the current build version.
var Version string

// options holds the values of the command line flags.
type options struct {
	width    int
	height   int
	noInvert bool
	mime     string
	viewBox  string
	label    string
	unique   bool
	config   string
	quiet    bool
}

const hints = `Quick instructions:
 - To let the logo inherit the color of its container, paste the SVG content INLINE (do not use <img>).
 - Then change its color through CSS, e.g. header { color: #fff }
`

func main() {
	os.Exit(cli.Run(newRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

// newRootCmd creates the colorable embedder command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "embed-colorable <input> <output>",
		Short: "Embed an image in SVG and make it colorable via currentColor (mask)",
		Long: fmt.Sprintf(`Embed an image in SVG and make it colorable via currentColor (mask).
    Version: %s

The PNG/JPEG image is embedded unmodified as a base64 data URI and used as a mask
over a rectangle filled with currentColor. By default the mask is color inverted,
since logos are usually dark strokes over a light background. currentColor is only
inherited when the SVG is inlined into the host document.

Example:
  embed-colorable logo.png logo.svg --width 320 --height 320
  embed-colorable logo.png logo.svg --no-invert`, Version),
		Args: cli.PositionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColorable(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", svgembed.DefaultWidth, "SVG width")
	flags.IntVar(&opts.height, "height", svgembed.DefaultHeight, "SVG height")
	flags.BoolVar(&opts.noInvert, "no-invert", false, "Don't invert the mask image (useful if the image already has transparency)")
	flags.StringVar(&opts.mime, "mime", "", "Force mime type (image/png or image/jpeg)")
	flags.StringVar(&opts.viewBox, "viewbox", "", "SVG viewBox (defaults to \"0 0 <width> <height>\")")
	flags.StringVar(&opts.label, "label", "", "Accessible label of the SVG document")
	flags.BoolVar(&opts.unique, "unique-ids", false, "Derive the mask and filter ids from the image content")
	flags.StringVarP(&opts.config, "config", "c", "", "Path to a YAML preset; explicit flags override it")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Don't print the usage hints and the execution time")

	return cmd
}

// buildConfig merges the YAML preset, if any, with the explicitly set flags.
func buildConfig(cmd *cobra.Command, opts *options) (svgembed.RenderConfig, error) {
	var (
		cfg = svgembed.DefaultConfig()
		err error
	)
	if opts.config != "" {
		cfg, err = svgembed.LoadConfig(opts.config)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("no-invert") {
		cfg.Invert = !opts.noInvert
	}
	if flags.Changed("mime") {
		cfg.Mime = opts.mime
	}
	if flags.Changed("viewbox") {
		cfg.ViewBox = opts.viewBox
	}
	if flags.Changed("label") {
		cfg.Label = opts.label
	}
	if flags.Changed("unique-ids") {
		cfg.UniqueIDs = opts.unique
	}

	return cfg, cfg.Validate()
}

func runColorable(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	proc := &svgembed.Processor{
		Mode:   svgembed.Colorable,
		Config: cfg,
		Logger: cli.NewLogger(cmd.ErrOrStderr()),
	}

	now := time.Now()
	op := cli.Ops(cmd, args)
	if err := proc.Execute(op); err != nil {
		return err
	}
	cli.PrintCreated(cmd, op)

	if !opts.quiet {
		stderr := cmd.ErrOrStderr()
		fmt.Fprint(stderr, hints)
		fmt.Fprintf(stderr, "\nExecution time: %s\n",
			utils.Colorize(stderr, utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return nil
}
