//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads the occupancy table into a one-pixel-per-block image
// and scales it onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w x h blocks.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

// Blit uploads cells (row-major, cols x rows) and draws them at unit pixels
// per block. The painter follows the grid when it grows.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cols, rows int, on, off color.Color, unit float64) {
	if len(cells) != cols*rows || cols == 0 || rows == 0 {
		return
	}
	if cols != gp.w || rows != gp.h {
		gp.resize(cols, rows)
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(unit, unit)
	dst.DrawImage(gp.img, op)
}

// DrawGridLines strokes the block boundaries that fall inside dst.
func DrawGridLines(dst *ebiten.Image, cols, rows int, unit float64, clr color.Color) {
	b := dst.Bounds()
	for _, l := range gridLines(cols, rows, unit, b.Dx(), b.Dy()) {
		vector.StrokeLine(dst, float32(l[0]), float32(l[1]), float32(l[2]), float32(l[3]), 1, clr, false)
	}
}
