package ui

import (
	"fmt"
	"strings"
)

// Status is what the HUD and the headless runner report about a session.
type Status struct {
	Generation int
	Population int
	Cols, Rows int
	Zoom       float64
	Paused     bool

	// FPS is the measured frame rate; zero when not measured.
	FPS float64
}

// String renders the status on one line.
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gen %d | live %d | %dx%d", s.Generation, s.Population, s.Cols, s.Rows)
	if s.Zoom != 0 && s.Zoom != 1 {
		fmt.Fprintf(&b, " | zoom %.2fx", s.Zoom)
	}
	if s.FPS > 0 {
		fmt.Fprintf(&b, " | %.0f fps", s.FPS)
	}
	if s.Paused {
		b.WriteString(" | paused")
	}
	return b.String()
}
