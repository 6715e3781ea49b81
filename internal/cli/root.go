package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"conway/internal/config"
)

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Config is filled in before any subcommand runs.
	Config config.Config
	Logger *slog.Logger

	flags config.Config
	cells []string
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *RootOptions) {
	opts := &RootOptions{flags: config.Default()}

	cmd := &cobra.Command{
		Use:   "conway",
		Short: "Conway's Game of Life",
		Long: `Conway's Game of Life on a bounded grid of blocks.

Cells are edited with the mouse while paused; the simulation advances at a
fixed number of generations per second while running. Window dimensions must
be multiples of the block size.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.Config = cfg
			opts.Logger.Debug("configuration resolved",
				"width", cfg.Width, "height", cfg.Height, "speed", cfg.Speed, "cells", len(cfg.Cells))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.IntVar(&opts.flags.Width, "width", opts.flags.Width, "width of the window in pixels")
	pf.IntVar(&opts.flags.Height, "height", opts.flags.Height, "height of the window in pixels")
	pf.IntVarP(&opts.flags.Speed, "speed", "s", opts.flags.Speed, "generations per second")
	pf.Int64Var(&opts.flags.Seed, "seed", opts.flags.Seed, "seed for random scatter")
	pf.Float64Var(&opts.flags.Density, "density", opts.flags.Density, "fraction of blocks made live at startup (0 disables)")
	pf.StringArrayVar(&opts.cells, "cell", nil, "initial live block as x,y (repeatable)")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd, opts
}

// resolve layers explicitly set flags over the config file over defaults,
// then validates the result.
func (o *RootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.flags.Width
	}
	if flags.Changed("height") {
		cfg.Height = o.flags.Height
	}
	if flags.Changed("speed") {
		cfg.Speed = o.flags.Speed
	}
	if flags.Changed("seed") {
		cfg.Seed = o.flags.Seed
	}
	if flags.Changed("density") {
		cfg.Density = o.flags.Density
	}
	if flags.Changed("cell") {
		cfg.Cells = append(cfg.Cells, o.cells...)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
