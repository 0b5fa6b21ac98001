package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestLayoutFitsDefaultTerminal(t *testing.T) {
	l := NewLayout(defaultRules(), 80, 24)

	if !l.Fits() {
		t.Fatalf("30x20 board should fit 80x24, board is %+v", l.Board())
	}
	if l.CellW != 2 {
		t.Errorf("Expected double-width cells on 80 columns, got %d", l.CellW)
	}
}

func TestLayoutFallsBackToNarrowCells(t *testing.T) {
	l := NewLayout(defaultRules(), 40, 24)

	if l.CellW != 1 {
		t.Errorf("Expected single-width cells on 40 columns, got %d", l.CellW)
	}
	if !l.Fits() {
		t.Errorf("Board should fit with narrow cells, board is %+v", l.Board())
	}
}

func TestLayoutTooSmall(t *testing.T) {
	l := NewLayout(defaultRules(), 20, 10)
	if l.Fits() {
		t.Error("30x20 board should not fit 20x10")
	}
}

func TestLayoutCellRect(t *testing.T) {
	l := NewLayout(defaultRules(), 80, 24)
	board := l.Board()

	first := l.CellRect(Point{X: 0, Y: 0})
	if first.X != board.X+1 || first.Y != board.Y+1 || first.W != 2 {
		t.Errorf("Cell (0, 0) = %+v, expected just inside board %+v", first, board)
	}
	last := l.CellRect(Point{X: 29, Y: 19})
	if last.Right() != board.Right()-1 || last.Bottom() != board.Bottom()-1 {
		t.Errorf("Cell (29, 19) = %+v, expected to touch the inner edge of %+v", last, board)
	}
}

func TestRestartButtonInsideBoard(t *testing.T) {
	l := NewLayout(defaultRules(), 80, 24)
	button := l.RestartButton()
	board := l.Board()

	if !board.Contains(button.X, button.Y) || !board.Contains(button.Right()-1, button.Bottom()-1) {
		t.Errorf("Restart button %+v should sit inside board %+v", button, board)
	}
}

func TestRenderRunning(t *testing.T) {
	g := newTestGame()
	steer(g, DirRight, Point{X: 5, Y: 5}, Point{X: 4, Y: 5})
	g.score = 7

	l := NewLayout(g.Rules(), 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen, l)

	out := screen.String()
	if !strings.Contains(out, "Score: 7") {
		t.Error("Expected the score in the HUD")
	}
	if strings.Contains(out, "Restart") {
		t.Error("Restart button should only appear after game over")
	}

	head := l.CellRect(Point{X: 5, Y: 5})
	if c := screen.GetCell(head.X, head.Y); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("Expected bright green head, got %q %v", c.Rune, c.Color)
	}
	food := l.CellRect(g.Food().Pos)
	if c := screen.GetCell(food.X, food.Y); c.Rune != '*' {
		t.Errorf("Expected normal food glyph, got %q", c.Rune)
	}
}

func TestRenderBonusTimer(t *testing.T) {
	g := newTestGame()
	g.food = Food{Pos: Point{X: 2, Y: 2}, Bonus: true, Timer: 3.3}

	l := NewLayout(g.Rules(), 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen, l)

	if !strings.Contains(screen.String(), "Bonus 3.3s") {
		t.Errorf("Expected bonus countdown in the HUD:\n%s", screen.String())
	}
	if c := screen.GetCell(l.Board().Right()-1, 0); c.Rune != 's' || c.Color != core.ColorYellow {
		t.Errorf("Expected the countdown to end the HUD in yellow, got %q %v", c.Rune, c.Color)
	}
	food := l.CellRect(g.Food().Pos)
	if c := screen.GetCell(food.X, food.Y); c.Rune != '$' || c.Color != core.ColorBrightYellow {
		t.Errorf("Expected bright yellow bonus food, got %q %v", c.Rune, c.Color)
	}
}

func TestRenderIdleHint(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)
	g.Render(screen, NewLayout(g.Rules(), 80, 24))

	if !strings.Contains(screen.String(), "Press an arrow key") {
		t.Error("Expected start hint before the first input")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame()
	steer(g, DirUp, Point{X: 4, Y: 0})
	g.score = 3
	g.Tick(0.1)

	l := NewLayout(g.Rules(), 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen, l)

	out := screen.String()
	for _, want := range []string{"Game Over!", "Score: 3", "Restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("Game over screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(20, 10)
	g.Render(screen, NewLayout(g.Rules(), 20, 10))

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected a too-small notice")
	}
}
