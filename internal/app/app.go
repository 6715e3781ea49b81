//go:build ebiten

package app

import (
	"image/color"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Ebiten calls Update and
// Draw from one goroutine, which is the only access the Session gets.
type Game struct {
	session *Session
	clock   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	seed    int64
	density float64

	onColor   color.Color
	offColor  color.Color
	lineColor color.Color
}

// New constructs a Game advancing speed generations per second. The seed and
// density are used when the player asks for a random scatter.
func New(session *Session, speed int, seed int64, density float64) *Game {
	g := session.Grid()
	return &Game{
		session:   session,
		clock:     core.NewFixedStep(speed),
		painter:   render.NewGridPainter(g.Cols(), g.Rows()),
		hud:       ui.NewHUD(),
		seed:      seed,
		density:   density,
		onColor:   color.Black,
		offColor:  color.White,
		lineColor: color.RGBA{R: 0, G: 0, B: 0, A: 64},
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyP) || inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		s.TogglePause()
		if s.Mode() == Running {
			g.clock.Reset()
		}
		ebiten.SetWindowTitle(s.Title())
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyR) {
		s.Reset()
		ebiten.SetWindowTitle(s.Title())
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyS) {
		g.seed++
		s.Scatter(g.seed, max(g.density, 0.2))
	}

	g.updatePointer()
	s.Layout()

	if s.Mode() == Running && g.clock.ShouldStep() {
		s.Tick()
	}
	return nil
}

func (g *Game) updatePointer() {
	s := g.session
	if _, dy := ebiten.Wheel(); dy != 0 {
		s.Scroll(dy)
	}
	x, y := ebiten.CursorPosition()
	s.MoveCursor(float64(x), float64(y))

	for _, m := range []struct {
		mouse  ebiten.MouseButton
		button Button
	}{
		{ebiten.MouseButtonLeft, ButtonLeft},
		{ebiten.MouseButtonRight, ButtonRight},
	} {
		if inpututil.IsMouseButtonJustPressed(m.mouse) {
			s.Press(m.button)
		}
		if inpututil.IsMouseButtonJustReleased(m.mouse) {
			s.Release(m.button)
		}
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	grid := s.Grid()
	screen.Fill(g.offColor)
	g.painter.Blit(screen, grid.Cells(), grid.Cols(), grid.Rows(), g.onColor, g.offColor, s.Unit())
	if s.Mode() == Paused {
		render.DrawGridLines(screen, grid.Cols(), grid.Rows(), s.Unit(), g.lineColor)
	}
	status := s.Status()
	status.FPS = ebiten.ActualFPS()
	g.hud.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := g.session.Viewport()
	return v.W, v.H
}
