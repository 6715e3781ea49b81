package render

import (
	"io"
	"strings"

	"conway/pkg/life"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	// clearScreen homes the cursor and clears the terminal.
	clearScreen = "\x1b[H\x1b[2J"
)

// TerminalRenderer writes generations to a terminal as text.
type TerminalRenderer struct {
	out        io.Writer
	live       string
	empty      string
	clearFirst bool
}

// NewTerminalRenderer returns a renderer using block glyphs. When clearFirst is
// set every frame starts by clearing the screen.
func NewTerminalRenderer(out io.Writer, clearFirst bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, live: gridPosBlock, empty: gridPosEmpty, clearFirst: clearFirst}
}

// WithGlyphs replaces the strings drawn for live and empty blocks.
func (r *TerminalRenderer) WithGlyphs(live, empty string) *TerminalRenderer {
	r.live, r.empty = live, empty
	return r
}

// Frame renders the grid, one text row per block row.
func (r *TerminalRenderer) Frame(g *life.Grid) string {
	var b strings.Builder
	cells := g.Cells()
	cols := g.Cols()
	b.Grow(g.Rows() * (cols*len(r.live) + 1))
	for y := 0; y < g.Rows(); y++ {
		for _, c := range cells[y*cols : (y+1)*cols] {
			if c != 0 {
				b.WriteString(r.live)
			} else {
				b.WriteString(r.empty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display writes the grid followed by a status line.
func (r *TerminalRenderer) Display(g *life.Grid, status string) error {
	var b strings.Builder
	if r.clearFirst {
		b.WriteString(clearScreen)
	}
	b.WriteString(r.Frame(g))
	if status != "" {
		b.WriteString(status)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}
