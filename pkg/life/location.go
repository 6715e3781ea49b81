package life

// BlockSize is the edge length of one block in pixels. Window dimensions must
// be exact multiples of it.
const BlockSize = 10

// Location identifies a position on the grid, live or not.
type Location struct {
	X, Y int
}

// Offset returns the location shifted by (dx, dy). The result may be out of
// bounds for any particular grid.
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Block is a live cell. Its identity is entirely its Location.
type Block struct {
	Loc Location
}

// NewBlock returns the block at (x, y).
func NewBlock(x, y int) Block {
	return Block{Loc: Location{X: x, Y: y}}
}

// NeighborKind tags the variant held by a Neighbor.
type NeighborKind uint8

const (
	// NeighborBlock marks an occupied adjacent position.
	NeighborBlock NeighborKind = iota + 1
	// NeighborLocation marks an empty, in-bounds adjacent position.
	NeighborLocation
)

// Neighbor is the result of looking at one position adjacent to a block:
// either the live block found there or the empty location.
type Neighbor struct {
	Kind NeighborKind
	loc  Location
}

func blockNeighbor(b Block) Neighbor { return Neighbor{Kind: NeighborBlock, loc: b.Loc} }
func emptyNeighbor(l Location) Neighbor { return Neighbor{Kind: NeighborLocation, loc: l} }

// Block returns the live block if the neighbor is occupied.
func (n Neighbor) Block() (Block, bool) {
	if n.Kind != NeighborBlock {
		return Block{}, false
	}
	return Block{Loc: n.loc}, true
}

// Location returns the empty position if the neighbor is unoccupied.
func (n Neighbor) Location() (Location, bool) {
	if n.Kind != NeighborLocation {
		return Location{}, false
	}
	return n.loc, true
}
