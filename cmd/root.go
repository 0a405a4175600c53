// Package cmd implements the sh2mp4 Cobra command.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sh2mp4/sh2mp4/internal/config"
	"github.com/sh2mp4/sh2mp4/internal/plan"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOptions holds the flag values of one command invocation.
type rootOptions struct {
	castFile     string
	speed        string
	fps          int
	cols         int
	lines        int
	checkDeps    bool
	measureFonts bool
	format       string
}

// acceptFunc receives a plan that passed validation.
type acceptFunc func(cmd *cobra.Command, req *plan.Request, format string) error

const longHelp = `sh2mp4 - Record a shell command or replay a cast file to video

Modes:
  Live:      sh2mp4 [flags] <command> [output]
  Cast file: sh2mp4 --cast-file <file.cast> [--speed Nx] [flags] [output]
  Utility:   sh2mp4 --check-deps | --measure-fonts

The resolved recording plan is written to stdout (--format yaml, json or text).

Examples:
  # Record a command to output.mp4
  sh2mp4 "htop"

  # Record with a custom output name and frame rate
  sh2mp4 --fps 60 "make test" build.mp4

  # Replay an asciinema recording at 8x speed
  sh2mp4 --cast-file demo.cast --speed 8x demo.mp4

Environment:
  SH2MP4_CONFIG   YAML file with fps, output, player, cols, lines defaults
  SH2MP4_FPS      default frame rate
  SH2MP4_OUTPUT   default output file
  SH2MP4_PLAYER   cast playback program (default asciinema)
  SH2MP4_COLOR    force diagnostic color on/off`

func newRootCmd(defaults config.Defaults, size plan.TerminalSizeFunc, accept acceptFunc) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sh2mp4 [flags] [command] [output]",
		Short: "Record a shell command or replay a cast file to video",
		Long:  longHelp,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 2 {
				return plan.Reject(plan.KindUsage,
					fmt.Errorf("accepts at most 2 positional arguments, received %d", len(args)))
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			format := strings.ToLower(opts.format)
			if !validFormat(format) {
				return plan.Reject(plan.KindInvalidValue,
					fmt.Errorf("invalid format %q: valid values are yaml, json, text", opts.format))
			}

			v := plan.NewValidator(defaults,
				plan.WithWarnings(c.ErrOrStderr()),
				plan.WithTerminalSize(size),
			)
			req, err := v.Validate(opts.flags(c.Flags(), args))
			if err != nil {
				return err
			}
			return accept(c, req, format)
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVar(&opts.castFile, "cast-file", "", "replay an existing asciicast recording instead of recording a command")
	f.StringVar(&opts.speed, "speed", "", "playback speed multiplier for --cast-file, e.g. 8x")
	f.IntVar(&opts.fps, "fps", defaults.FPS, "output video frame rate")
	f.IntVar(&opts.cols, "cols", defaults.Cols, "terminal width (default: cast header, then current terminal)")
	f.IntVar(&opts.lines, "lines", defaults.Lines, "terminal height (default: cast header, then current terminal)")
	f.BoolVar(&opts.checkDeps, "check-deps", false, "check that required external tools are installed")
	f.BoolVar(&opts.measureFonts, "measure-fonts", false, "measure monospace font metrics")
	f.StringVar(&opts.format, "format", "yaml", "plan output format: yaml, json, text")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return plan.Reject(plan.KindUsage, err)
	})
	cmd.SetVersionTemplate(fmt.Sprintf("sh2mp4 version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))

	return cmd
}

// flags converts parsed flag values into plan.Flags. Only flags the user
// actually set are passed on, so defaults never masquerade as overrides.
func (o *rootOptions) flags(fs *pflag.FlagSet, args []string) plan.Flags {
	pf := plan.Flags{
		Positional:   args,
		CheckDeps:    o.checkDeps,
		MeasureFonts: o.measureFonts,
	}
	if fs.Changed("cast-file") {
		pf.CastFile = &o.castFile
	}
	if fs.Changed("speed") {
		pf.Speed = &o.speed
	}
	pf.FPS = changedInt(fs, "fps", o.fps)
	pf.Cols = changedInt(fs, "cols", o.cols)
	pf.Lines = changedInt(fs, "lines", o.lines)
	return pf
}

func changedInt(fs *pflag.FlagSet, name string, v int) *int {
	if !fs.Changed(name) {
		return nil
	}
	return &v
}

// Execute runs the root command, writing the accepted plan to stdout.
func Execute() error {
	defaults, err := config.Load()
	if err != nil {
		return err
	}
	return newRootCmd(defaults, terminalSize, writePlan).Execute()
}

// ParseAndValidate resolves args into a recording plan without running
// anything. Warnings go to stderr. It returns a nil plan and nil error when
// args only asked for --help or --version. The attached terminal is never
// consulted, so live-mode geometry comes only from flags and defaults.
func ParseAndValidate(args []string, stderr io.Writer) (*plan.Request, error) {
	defaults, err := config.Load()
	if err != nil {
		return nil, err
	}

	var accepted *plan.Request
	cmd := newRootCmd(defaults, noTerminal, func(_ *cobra.Command, req *plan.Request, _ string) error {
		accepted = req
		return nil
	})

	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	cmd.SetOut(stderr)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	return accepted, nil
}
