package render

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conway/pkg/life"
)

func blinker() *life.Grid {
	g := life.NewBlocks(5, 5)
	for _, x := range []int{1, 2, 3} {
		g.Insert(life.NewBlock(x, 2))
	}
	return g
}

func TestTerminalFrameGolden(t *testing.T) {
	g := blinker()
	r := NewTerminalRenderer(nil, false).WithGlyphs("#", ".")

	var frames bytes.Buffer
	frames.WriteString(r.Frame(g))
	frames.WriteString("--\n")
	g.Advance()
	frames.WriteString(r.Frame(g))

	gd := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	gd.Assert(t, "blinker", frames.Bytes())
}

func TestTerminalDisplay(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, true)

	require.NoError(t, r.Display(life.NewBlocks(2, 1), "gen 0"))
	assert.Equal(t, clearScreen+"    \ngen 0\n", out.String())

	out.Reset()
	g := life.NewBlocks(2, 1)
	g.Insert(life.NewBlock(1, 0))
	r = NewTerminalRenderer(&out, false)
	require.NoError(t, r.Display(g, ""))
	assert.Equal(t, "  ██\n", out.String())
}
