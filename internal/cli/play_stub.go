//go:build !ebiten

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrNoGUI is returned by play in builds without the ebiten tag.
var ErrNoGUI = errors.New("the window requires building with the ebiten tag: go run -tags ebiten ./cmd/conway play")

// NewPlayCommand creates a play command that explains how to get the GUI
// build.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return WrapExitError(ExitCommandError, "play unavailable", ErrNoGUI)
		},
	}
}
