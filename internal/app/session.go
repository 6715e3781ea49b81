package app

import (
	"io"
	"log/slog"
	"math"

	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/ui"
	"conway/pkg/life"
)

// WindowTitle is the title shown while the simulation is running.
const WindowTitle = "Conway's Game of Life"

// Zoom accumulator bounds. MinZoom caps the table at 4x the window's block
// count in each dimension.
const (
	MinZoom = -3.0
	MaxZoom = 9.0
)

// Mode is the simulation state.
type Mode uint8

const (
	// Paused accepts edits and never advances.
	Paused Mode = iota
	// Running advances on every tick and ignores edits.
	Running
)

func (m Mode) String() string {
	if m == Running {
		return "running"
	}
	return "paused"
}

// Button identifies a pointer button that paints.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Session owns the grid and decides which mutations are allowed when. It is
// driven from a single goroutine: input, ticks and drawing never interleave.
type Session struct {
	cfg    config.Config
	logger *slog.Logger

	grid       *life.Grid
	mode       Mode
	generation int

	zoom      float64
	cursor    [2]float64
	leftDown  bool
	rightDown bool
}

// NewSession creates a paused session with an empty grid sized from cfg. cfg
// must already be validated. A nil logger discards output.
func NewSession(cfg config.Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		cfg:    cfg,
		logger: logger,
		grid:   life.New(cfg.Width, cfg.Height),
	}
}

// Grid exposes the current generation for reading.
func (s *Session) Grid() *life.Grid { return s.grid }

// Mode returns the current state.
func (s *Session) Mode() Mode { return s.mode }

// Generation returns the number of generations advanced since the last reset.
func (s *Session) Generation() int { return s.generation }

// Viewport returns the window size in pixels.
func (s *Session) Viewport() core.Size {
	return core.Size{W: s.cfg.Width, H: s.cfg.Height}
}

// Title returns the window title for the current mode.
func (s *Session) Title() string {
	if s.mode == Paused {
		return WindowTitle + " (paused)"
	}
	return WindowTitle
}

// Start switches to Running.
func (s *Session) Start() { s.setMode(Running) }

// Pause switches to Paused.
func (s *Session) Pause() { s.setMode(Paused) }

// TogglePause flips between Paused and Running.
func (s *Session) TogglePause() {
	if s.mode == Running {
		s.setMode(Paused)
		return
	}
	s.setMode(Running)
}

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.mode = m
	s.logger.Debug("mode changed", "mode", m, "generation", s.generation, "population", s.grid.Population())
}

// Reset discards the grid for a fresh empty one of the configured size and
// pauses. The zoom level is kept; Layout regrows the table for it.
func (s *Session) Reset() {
	s.grid = life.New(s.cfg.Width, s.cfg.Height)
	s.mode = Paused
	s.generation = 0
	s.cursor = [2]float64{}
	s.leftDown, s.rightDown = false, false
	s.logger.Debug("grid reset", "cols", s.grid.Cols(), "rows", s.grid.Rows())
}

// Tick advances one generation when running and reports whether it did.
func (s *Session) Tick() bool {
	if s.mode != Running {
		return false
	}
	s.grid.Advance()
	s.generation++
	return true
}

// Paint sets the block at (x, y) live or dead. Edits are ignored while
// running, and out-of-range coordinates are ignored by the grid.
func (s *Session) Paint(x, y int, alive bool) {
	if s.mode == Running {
		return
	}
	b := life.NewBlock(x, y)
	if alive {
		s.grid.Insert(b)
	} else {
		s.grid.Remove(b)
	}
}

// Toggle flips the block at (x, y). Ignored while running.
func (s *Session) Toggle(x, y int) {
	s.Paint(x, y, !s.grid.Contains(life.NewBlock(x, y)))
}

// Scatter fills the grid at random with the given density. Ignored while
// running.
func (s *Session) Scatter(seed int64, density float64) {
	if s.mode == Running || density <= 0 {
		return
	}
	rng := core.NewRNG(seed)
	for y := 0; y < s.grid.Rows(); y++ {
		for x := 0; x < s.grid.Cols(); x++ {
			if rng.Chance(density) {
				s.grid.Insert(life.NewBlock(x, y))
			}
		}
	}
	s.logger.Debug("scattered", "seed", seed, "density", density, "population", s.grid.Population())
}

// Press records a button press and paints under the cursor.
func (s *Session) Press(b Button) {
	switch b {
	case ButtonLeft:
		s.leftDown, s.rightDown = true, false
	case ButtonRight:
		s.leftDown, s.rightDown = false, true
	}
	s.paint()
}

// Release records a button release.
func (s *Session) Release(b Button) {
	switch b {
	case ButtonLeft:
		s.leftDown = false
	case ButtonRight:
		s.rightDown = false
	}
}

// MoveCursor records the pointer position in window pixels and paints while
// a button is held.
func (s *Session) MoveCursor(px, py float64) {
	s.cursor = [2]float64{px, py}
	s.paint()
}

func (s *Session) paint() {
	if s.mode == Running || !(s.leftDown || s.rightDown) {
		return
	}
	x, y := s.BlockAt(s.cursor[0], s.cursor[1])
	s.Paint(x, y, s.leftDown)
}

// BlockAt converts window pixels to block coordinates at the current zoom.
// Pixels left of or above the window map to negative coordinates, which the
// grid ignores.
func (s *Session) BlockAt(px, py float64) (int, int) {
	unit := s.Unit()
	return int(math.Floor(px / unit)), int(math.Floor(py / unit))
}

// Scroll adjusts the zoom by a wheel delta.
func (s *Session) Scroll(dy float64) {
	next := min(max(s.zoom+dy, MinZoom), MaxZoom)
	if next == s.zoom {
		return
	}
	s.zoom = next
	s.logger.Debug("zoom changed", "factor", s.ZoomFactor())
}

// ZoomFactor maps the zoom accumulator to a scale: 1 at rest, growing by one
// per wheel step in, and 1/2, 1/3, ... per step out.
func (s *Session) ZoomFactor() float64 {
	if s.zoom < 0 {
		return 1 / (-s.zoom + 1)
	}
	return s.zoom + 1
}

// Unit returns the on-screen edge length of one block in pixels.
func (s *Session) Unit() float64 {
	return life.BlockSize * s.ZoomFactor()
}

// Layout grows the grid so it covers the whole window at the current zoom.
// It never shrinks the grid.
func (s *Session) Layout() {
	cols := s.blocksAcross(s.cfg.Width)
	rows := s.blocksAcross(s.cfg.Height)
	if s.grid.EnsureCapacity(cols, rows) {
		s.logger.Debug("grid grown", "cols", s.grid.Cols(), "rows", s.grid.Rows())
	}
}

// blocksAcross returns how many blocks are needed to cover px pixels. The
// epsilon keeps 1/3 zoom from rounding 30.000000000000004 up to 31.
func (s *Session) blocksAcross(px int) int {
	return int(math.Ceil(float64(px)/s.Unit() - 1e-9))
}

// Status snapshots the session for display.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Generation: s.generation,
		Population: s.grid.Population(),
		Cols:       s.grid.Cols(),
		Rows:       s.grid.Rows(),
		Zoom:       s.ZoomFactor(),
		Paused:     s.mode == Paused,
	}
}
