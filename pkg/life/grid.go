// Package life implements Conway's Game of Life on a bounded, non-wrapping
// grid of blocks.
//
// A Grid keeps two views of the same generation: a dense row-major occupancy
// table for O(1) lookups and a set of live blocks for O(population)
// iteration. Every mutating method updates both, so the set always equals the
// occupied table entries. Coordinates outside the table are never an error;
// they are simply ignored.
//
// A Grid is not safe for concurrent use.
package life

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// offsets is the fixed scan order used for neighbor enumeration.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {1, 0},
}

// Grid stores a single generation.
type Grid struct {
	cols, rows int
	cells      []uint8
	blocks     mapset.Set[Block]
}

// New returns an empty grid covering a width x height pixel area. Both
// dimensions are expected to be multiples of BlockSize; callers validate that
// before construction.
func New(width, height int) *Grid {
	return NewBlocks(width/BlockSize, height/BlockSize)
}

// NewBlocks returns an empty grid of cols x rows blocks.
func NewBlocks(cols, rows int) *Grid {
	cols = max(cols, 0)
	rows = max(rows, 0)
	return &Grid{
		cols:   cols,
		rows:   rows,
		cells:  make([]uint8, cols*rows),
		blocks: mapset.New[Block](),
	}
}

// Cols returns the current number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the current number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cells exposes the occupancy table in row-major order (1 = live). Callers
// must treat it as read-only; it is replaced when the grid grows.
func (g *Grid) Cells() []uint8 { return g.cells }

// Population returns the number of live blocks.
func (g *Grid) Population() int { return g.blocks.Size() }

// Valid reports whether (x, y) addresses a table entry.
func (g *Grid) Valid(x, y int) bool {
	return y >= 0 && y < g.rows && x >= 0 && x < g.cols
}

func (g *Grid) index(x, y int) int { return y*g.cols + x }

// Insert makes b live. Inserting a live block is a no-op: the slot can only
// ever hold the block at its own coordinates, so there is nothing to replace.
func (g *Grid) Insert(b Block) {
	x, y := b.Loc.X, b.Loc.Y
	if !g.Valid(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.cells[idx] != 0 {
		return
	}
	g.cells[idx] = 1
	g.blocks.Put(b)
}

// Remove kills b. Removing a dead or out-of-range block is a no-op.
func (g *Grid) Remove(b Block) {
	x, y := b.Loc.X, b.Loc.Y
	if !g.Valid(x, y) {
		return
	}
	idx := g.index(x, y)
	if g.cells[idx] == 0 {
		return
	}
	g.cells[idx] = 0
	g.blocks.Remove(b)
}

// Contains reports whether b is in range and live.
func (g *Grid) Contains(b Block) bool {
	return g.Valid(b.Loc.X, b.Loc.Y) && g.cells[g.index(b.Loc.X, b.Loc.Y)] != 0
}

// Blocks yields every live block in unspecified order.
func (g *Grid) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		stopped := false
		g.blocks.Each(func(b Block) {
			if !stopped && !yield(b) {
				stopped = true
			}
		})
	}
}

// Neighbors yields the in-bounds positions adjacent to b. Edge and corner
// blocks have fewer than eight; an out-of-range b has none.
func (g *Grid) Neighbors(b Block) iter.Seq[Neighbor] {
	return func(yield func(Neighbor) bool) {
		if !g.Valid(b.Loc.X, b.Loc.Y) {
			return
		}
		for _, off := range offsets {
			loc := b.Loc.Offset(off[0], off[1])
			if !g.Valid(loc.X, loc.Y) {
				continue
			}
			n := emptyNeighbor(loc)
			if g.cells[g.index(loc.X, loc.Y)] != 0 {
				n = blockNeighbor(Block{Loc: loc})
			}
			if !yield(n) {
				return
			}
		}
	}
}

// LiveNeighbors yields the occupied neighbors of b.
func (g *Grid) LiveNeighbors(b Block) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for n := range g.Neighbors(b) {
			if blk, ok := n.Block(); ok && !yield(blk) {
				return
			}
		}
	}
}

// DeadNeighbors yields the empty in-bounds neighbors of b.
func (g *Grid) DeadNeighbors(b Block) iter.Seq[Location] {
	return func(yield func(Location) bool) {
		for n := range g.Neighbors(b) {
			if loc, ok := n.Location(); ok && !yield(loc) {
				return
			}
		}
	}
}

// CountLive returns the number of live neighbors of b.
func (g *Grid) CountLive(b Block) int {
	count := 0
	for range g.LiveNeighbors(b) {
		count++
	}
	return count
}

// EnsureCapacity grows the table to at least cols x rows. New columns and
// rows are appended at the high-index end and start empty; existing blocks
// keep their coordinates. It never shrinks and reports whether it grew.
func (g *Grid) EnsureCapacity(cols, rows int) bool {
	if cols <= g.cols && rows <= g.rows {
		return false
	}
	nc, nr := max(cols, g.cols), max(rows, g.rows)
	next := make([]uint8, nc*nr)
	for y := 0; y < g.rows; y++ {
		copy(next[y*nc:y*nc+g.cols], g.cells[y*g.cols:(y+1)*g.cols])
	}
	g.cols, g.rows, g.cells = nc, nr, next
	return true
}
