package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game into dst. The screen is cleared first.
func (g *Game) Render(dst *core.Screen, l Layout) {
	dst.Clear()

	if !l.Fits() {
		cy := dst.Height() / 2
		dst.DrawTextCentered(cy-1, "Window too small", core.ColorBrightWhite)
		dst.DrawTextCentered(cy, fmt.Sprintf("Need %dx%d", l.Board().W, l.Board().H+hudHeight), core.ColorGray)
		return
	}

	g.renderHUD(dst, l)
	dst.DrawBox(l.Board(), core.ColorGray)
	g.renderFood(dst, l)
	g.renderSnake(dst, l)

	switch g.Status() {
	case StatusIdle:
		_, cy := l.Board().Center()
		dst.DrawTextCentered(cy+2, "Press an arrow key to start", core.ColorGray)
	case StatusOver:
		g.renderGameOver(dst, l)
	}
}

func (g *Game) renderHUD(dst *core.Screen, l Layout) {
	board := l.Board()
	hud := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(board.X, 0, hud, core.ColorBrightWhite)

	if g.food.Bonus {
		bonus := fmt.Sprintf("Bonus %.1fs", max(g.food.Timer, 0))
		dst.DrawText(board.Right()-len(bonus), 0, bonus, core.ColorYellow)
	}
}

func (g *Game) renderFood(dst *core.Screen, l Layout) {
	glyph, color := '*', core.ColorRed
	if g.food.Bonus {
		glyph, color = '$', core.ColorBrightYellow
	}
	dst.DrawRect(l.CellRect(g.food.Pos), glyph, color)
}

func (g *Game) renderSnake(dst *core.Screen, l Layout) {
	// Tail first so the head wins if segments ever share a cell.
	for i := len(g.body) - 1; i >= 0; i-- {
		glyph, color := '█', core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.DrawRect(l.CellRect(g.body[i]), glyph, color)
	}
}

func (g *Game) renderGameOver(dst *core.Screen, l Layout) {
	button := l.RestartButton()
	_, cy := l.Board().Center()

	panel := core.NewRect(button.X-4, cy-3, button.W+8, button.Bottom()-(cy-3)+1)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorWhite)

	centerText := func(y int, text string, c core.Color) {
		x := panel.X + (panel.W-len(text))/2
		dst.DrawText(x, y, text, c)
	}
	centerText(cy-2, "Game Over!", core.ColorBrightWhite)
	centerText(cy-1, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	dst.DrawBox(button, core.ColorBrightGreen)
	dst.DrawText(button.X+(button.W-len(restartLabel))/2, button.Y+1, restartLabel, core.ColorBrightGreen)
}
