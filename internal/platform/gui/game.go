// Package gui provides a windowed front end built on Ebitengine. The board is drawn
// with one square per grid cell and the restart button is clicked with the mouse.
package gui

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
)

const windowTitle = "Snake Game"

// Restart button geometry relative to the window center, in pixels.
const (
	buttonOffsetX = -50
	buttonOffsetY = 40
	buttonW       = 100
	buttonH       = 40
)

var (
	snakeColor  = color.RGBA{0, 255, 0, 255}
	foodColor   = color.RGBA{255, 0, 0, 255}
	bonusColor  = color.RGBA{255, 255, 0, 255}
	buttonColor = color.RGBA{51, 51, 51, 255}
)

var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEnter, core.ActionRestart},
}

// Options configures the windowed game.
type Options struct {
	Config config.Config
	Seed   *int64       // nil picks a time-based seed
	Sink   session.Sink // nil disables saving runs
	Logger *log.Logger  // nil discards log output
}

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	sess   *session.Session
	width  int // Window size in pixels
	height int
}

// New creates the windowed game.
func New(opts Options) *Game {
	cfg := opts.Config
	return &Game{
		cfg: cfg,
		sess: session.New(session.Options{
			Config: cfg,
			Seed:   opts.Seed,
			Sink:   opts.Sink,
			Logger: opts.Logger,
		}),
		width:  cfg.Grid.Width * cfg.Display.CellSize,
		height: cfg.Grid.Height * cfg.Display.CellSize,
	}
}

// Update polls input and advances the game by one fixed frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.sess.Handle(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.sess.Game().GameOver() && g.onRestartButton(x, y) {
			g.sess.Restart()
		}
	}

	g.sess.Advance(1 / float64(ebiten.TPS()))
	return nil
}

// restartButton returns the button rectangle in window pixels.
func (g *Game) restartButton() (x, y, w, h float32) {
	return float32(g.width/2 + buttonOffsetX), float32(g.height/2 + buttonOffsetY), buttonW, buttonH
}

// onRestartButton reports whether a pixel lies on the button, edges included.
func (g *Game) onRestartButton(px, py int) bool {
	x, y, w, h := g.restartButton()
	fx, fy := float32(px), float32(py)
	return fx >= x && fx <= x+w && fy >= y && fy <= y+h
}

// Draw renders the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	game := g.sess.Game()
	for _, p := range game.Body() {
		g.drawCell(screen, p, snakeColor)
	}

	food := game.Food()
	if food.Bonus {
		g.drawCell(screen, food.Pos, bonusColor)
	} else {
		g.drawCell(screen, food.Pos, foodColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", game.Score()), 10, 10)
	if food.Bonus {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Bonus: %.1fs", max(food.Timer, 0)), 10, 26)
	}

	switch game.Status() {
	case snake.StatusIdle:
		ebitenutil.DebugPrintAt(screen, "Press an arrow key to start", g.width/2-80, g.height/2+40)
	case snake.StatusOver:
		ebitenutil.DebugPrintAt(screen, "Game Over!", g.width/2-30, g.height/2)

		x, y, w, h := g.restartButton()
		vector.DrawFilledRect(screen, x, y, w, h, buttonColor, false)
		ebitenutil.DebugPrintAt(screen, "Restart", int(x)+29, int(y)+12)
	}
}

func (g *Game) drawCell(screen *ebiten.Image, p snake.Point, c color.Color) {
	size := float32(g.cfg.Display.CellSize)
	vector.DrawFilledRect(screen, float32(p.X)*size, float32(p.Y)*size, size, size, c, false)
}

// Layout keeps the logical screen at the board size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(opts Options) error {
	g := New(opts)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(opts.Config.Display.FrameRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
