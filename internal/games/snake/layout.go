package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 1 // Score line above the board

	restartLabel   = "Restart"
	restartButtonW = len(restartLabel) + 6
	restartButtonH = 3
)

// Layout maps grid cells to screen cells for a given screen size.
// Cells are two columns wide when the screen allows it so the board looks square.
type Layout struct {
	ScreenW, ScreenH int
	GridW, GridH     int
	CellW            int
	OriginX, OriginY int // Screen position of grid cell (0, 0)
}

// NewLayout centers a grid of the given rules on a screen.
func NewLayout(rules config.Rules, screenW, screenH int) Layout {
	l := Layout{
		ScreenW: screenW,
		ScreenH: screenH,
		GridW:   rules.Grid.Width,
		GridH:   rules.Grid.Height,
		CellW:   2,
	}
	if l.Board().W > screenW {
		l.CellW = 1
	}

	board := l.Board()
	l.OriginX = (screenW-board.W)/2 + 1
	l.OriginY = hudHeight + 1
	return l
}

// Board returns the board rectangle including its border.
func (l Layout) Board() core.Rect {
	return core.NewRect(l.OriginX-1, l.OriginY-1, l.GridW*l.CellW+2, l.GridH+2)
}

// Fits reports whether the whole board and HUD are visible.
func (l Layout) Fits() bool {
	board := l.Board()
	return board.X >= 0 && board.Right() <= l.ScreenW && board.Bottom() <= l.ScreenH
}

// CellRect returns the screen cells covered by grid cell p.
func (l Layout) CellRect(p Point) core.Rect {
	return core.NewRect(l.OriginX+p.X*l.CellW, l.OriginY+p.Y, l.CellW, 1)
}

// RestartButton returns the clickable restart button shown after game over,
// just below the board center.
func (l Layout) RestartButton() core.Rect {
	cx, cy := l.Board().Center()
	return core.NewRect(cx-restartButtonW/2, cy+1, restartButtonW, restartButtonH)
}
