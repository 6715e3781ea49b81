package life

import "github.com/zyedidia/generic/mapset"

// survives reports whether a live block with n live neighbors stays alive.
func survives(n int) bool { return n == 2 || n == 3 }

// born reports whether an empty position with n live neighbors comes alive.
func born(n int) bool { return n == 3 }

// Advance replaces the current generation with the next one.
//
// Deaths and births are both decided against the current generation before
// anything is applied. Only empty positions adjacent to a live block are
// birth candidates; nothing else can have three live neighbors.
func (g *Grid) Advance() {
	var deaths []Block
	births := mapset.New[Block]()
	checked := mapset.New[Location]()

	g.blocks.Each(func(b Block) {
		if !survives(g.CountLive(b)) {
			deaths = append(deaths, b)
		}
		for loc := range g.DeadNeighbors(b) {
			if checked.Has(loc) {
				continue
			}
			checked.Put(loc)
			candidate := Block{Loc: loc}
			if born(g.CountLive(candidate)) {
				births.Put(candidate)
			}
		}
	})

	for _, b := range deaths {
		g.Remove(b)
	}
	births.Each(func(b Block) {
		g.Insert(b)
	})
}
