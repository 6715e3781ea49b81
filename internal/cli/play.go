//go:build ebiten

package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"conway/internal/app"
)

// NewPlayCommand creates the play command, which opens a window.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive window",
		Long: `Open the interactive window.

Controls:
  left mouse    paint live blocks (paused only)
  right mouse   erase blocks (paused only)
  wheel         zoom
  P / Enter     pause or resume
  R             reset to an empty grid
  S             scatter random blocks (paused only)
  Q / Esc       quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(rootOpts)
		},
	}
}

func play(opts *RootOptions) error {
	session, err := newSession(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid initial cells", err)
	}
	cfg := opts.Config
	game := app.New(session, cfg.Speed, cfg.Seed, cfg.Density)

	ebiten.SetWindowTitle(session.Title())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	opts.Logger.Info("opening window", "width", cfg.Width, "height", cfg.Height, "speed", cfg.Speed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return WrapExitError(ExitFailure, "game loop", err)
	}
	opts.Logger.Info("window closed", "generations", session.Generation(), "population", session.Grid().Population())
	return nil
}
