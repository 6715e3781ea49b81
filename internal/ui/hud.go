//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 6
	hudHeight  = 20
)

// HUD draws the status line in a translucent strip along the bottom edge of
// the window.
type HUD struct {
	strip *ebiten.Image
	width int
	bg    color.Color
	fg    color.Color
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	return &HUD{
		bg: color.RGBA{R: 16, G: 16, B: 20, A: 200},
		fg: color.RGBA{R: 220, G: 220, B: 230, A: 255},
	}
}

// Draw paints the status onto screen.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	if h == nil {
		return
	}
	bounds := screen.Bounds()
	width := bounds.Dx()
	if width <= 0 || bounds.Dy() < hudHeight {
		return
	}
	if h.strip == nil || h.width != width {
		h.strip = ebiten.NewImage(width, hudHeight)
		h.width = width
	}
	h.strip.Fill(h.bg)
	face := basicfont.Face7x13
	text.Draw(h.strip, status.String(), face, hudPadding, hudHeight-hudPadding, h.fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(bounds.Dy()-hudHeight))
	screen.DrawImage(h.strip, op)
}
