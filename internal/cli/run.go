package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"conway/internal/app"
	"conway/internal/core"
	"conway/internal/render"
)

// RunOptions holds flags for the headless run command.
type RunOptions struct {
	*RootOptions
	Generations int
	NoClear     bool
	Glyphs      string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation in the terminal",
		Long: `Run the simulation without a window, printing each generation to stdout.

The initial generation comes from --cell and --density (or the cells and
density keys of the configuration file). The run stops after --generations
generations, or on interrupt when --generations is 0.

Example:
  conway run --width 200 --height 100 --cell 1,2 --cell 2,2 --cell 3,2
  conway run -c glider.yaml --generations 40 --speed 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runHeadless(ctx, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Generations, "generations", "g", 0, "stop after this many generations (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.NoClear, "no-clear", false, "do not clear the terminal between frames")
	cmd.Flags().StringVar(&opts.Glyphs, "glyphs", "", "two characters for live and empty blocks, e.g. \"#.\"")

	return cmd
}

// newSession builds a paused session holding the configured initial cells.
func newSession(opts *RootOptions) (*app.Session, error) {
	s := app.NewSession(opts.Config, opts.Logger)
	locs, err := opts.Config.Locations()
	if err != nil {
		return nil, err
	}
	for _, loc := range locs {
		s.Paint(loc.X, loc.Y, true)
	}
	s.Scatter(opts.Config.Seed, opts.Config.Density)
	return s, nil
}

func runHeadless(ctx context.Context, opts *RunOptions, out io.Writer) error {
	session, err := newSession(opts.RootOptions)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid initial cells", err)
	}
	renderer := render.NewTerminalRenderer(out, !opts.NoClear)
	if g := []rune(opts.Glyphs); len(g) == 2 {
		renderer.WithGlyphs(string(g[0]), string(g[1]))
	}

	interval := time.Second / time.Duration(opts.Config.Speed)
	stats := core.NewStats(time.Now())
	logger := opts.Logger
	logger.Info("starting run",
		"cols", session.Grid().Cols(), "rows", session.Grid().Rows(),
		"population", session.Grid().Population(), "interval", interval)

	if err := renderer.Display(session.Grid(), session.Status().String()); err != nil {
		return WrapExitError(ExitFailure, "write frame", err)
	}
	session.Start()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ticks := make(chan time.Time)
	eg, ctx := errgroup.WithContext(ctx)

	// The clock only produces ticks; the driver below is the only goroutine
	// that touches the session.
	eg.Go(func() error {
		defer close(ticks)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-t.C:
				select {
				case ticks <- now:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		defer cancel()
		last := time.Now()
		for now := range ticks {
			session.Tick()
			stats.Update(session.Generation(), session.Grid().Population(), now.Sub(last))
			last = now
			if err := renderer.Display(session.Grid(), session.Status().String()); err != nil {
				return WrapExitError(ExitFailure, "write frame", err)
			}
			if opts.Generations > 0 && session.Generation() >= opts.Generations {
				return nil
			}
		}
		return nil
	})

	err = eg.Wait()
	logger.Info("run finished",
		"generations", session.Generation(),
		"population", session.Grid().Population(),
		"peak_population", stats.PeakPopulation,
		"avg_population", stats.AveragePopulation,
		"elapsed", time.Since(stats.StartTime).Round(time.Millisecond))
	return err
}
