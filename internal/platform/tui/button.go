package tui

import (
	"github.com/vovakirdan/walk-the-dog/internal/core"
)

const restartLabel = "[ New Game ]"

// restartButton returns where the restart button sits on a canvas of
// cols x rows cells: centred, one third of the way down.
func restartButton(cols, rows int) core.Rect {
	w := len(restartLabel)
	x := core.Max((cols-w)/2, 0)
	return core.NewRect(int16(x), int16(rows/3), int16(w), 1)
}

// drawRestartButton draws the button label onto the screen.
func drawRestartButton(s *core.Screen, cols, rows int) {
	r := restartButton(cols, rows)
	s.DrawText(int(r.X), int(r.Y), restartLabel, core.ColorOrange)
}
