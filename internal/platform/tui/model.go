package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Options configures a game model.
type Options struct {
	Config        config.Config
	Runtime       core.RuntimeConfig // Zero size and frame rate fall back to defaults
	NewSeed       func() int64       // Seeds for restarts; nil uses the wall clock
	Sink          session.Sink       // nil disables saving runs
	Logger        *log.Logger        // nil discards log output
	Renderer      *lipgloss.Renderer // nil uses the default renderer
	ScreenshotDir string             // Defaults to ~/.snake/screenshots
}

// Model is the Bubble Tea model for one player's games of snake.
// The session and screen are pointers, so copies of the model share one game.
type Model struct {
	cfg     config.Config
	sess    *session.Session
	screen  *core.Screen
	layout  snake.Layout
	palette Palette
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	width, height int
	frameRate     int
	screenshotDir string

	lastFrame time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	rt := core.DefaultConfig()
	if opts.Runtime.ScreenW > 0 && opts.Runtime.ScreenH > 0 {
		rt.ScreenW, rt.ScreenH = opts.Runtime.ScreenW, opts.Runtime.ScreenH
	}
	if opts.Config.Display.FrameRate > 0 {
		rt.FrameRate = opts.Config.Display.FrameRate
	}
	if opts.Runtime.FrameRate > 0 {
		rt.FrameRate = opts.Runtime.FrameRate
	}

	m := Model{
		cfg: opts.Config,
		sess: session.New(session.Options{
			Config:  opts.Config,
			Seed:    opts.Runtime.Seed,
			NewSeed: opts.NewSeed,
			Sink:    opts.Sink,
			Logger:  logger,
		}),
		screen:        core.NewScreen(rt.ScreenW, rt.ScreenH),
		palette:       NewPalette(renderer),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		width:         rt.ScreenW,
		height:        rt.ScreenH,
		frameRate:     rt.FrameRate,
		screenshotDir: opts.ScreenshotDir,
	}
	m.resize()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.sess.Handle(action)

	return m, nil
}

// handleMouse restarts the game when the restart button is clicked after game over.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.Game().GameOver() && m.layout.RestartButton().Contains(msg.X, msg.Y) {
		m.sess.Restart()
	}
	return m, nil
}

// handleFrame feeds the real time since the previous frame to the clock and ticks the
// game at most once.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastFrame).Seconds()
	if m.lastFrame.IsZero() || dt < 0 {
		dt = 1 / float64(m.frameRate)
	}
	m.lastFrame = now

	m.sess.Advance(dt)

	return m, frameCmd(m.frameRate)
}

// resize recomputes the screen buffer and board layout. The help footer keeps the
// bottom rows.
func (m *Model) resize() {
	m.help.Width = m.width
	gameH := max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
	m.screen.Resize(m.width, gameH)
	m.layout = snake.NewLayout(m.cfg.Rules(), m.width, gameH)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Error("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Error("could not save screenshot", "error", err)
		return
	}

	m.Game().Render(m.screen, m.layout)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.Game().Render(m.screen, m.layout)

	footer := m.help.View(m.keys)
	if id := m.sess.LastRunID(); id != "" {
		footer += m.palette[core.ColorGray].Render("  saved run " + id)
	}
	return m.palette.Render(m.screen) + "\n" + footer
}

// Game returns the game being played.
func (m Model) Game() *snake.Game {
	return m.sess.Game()
}

// Journal returns the journal of the current run.
func (m Model) Journal() replay.Journal {
	return m.sess.Journal()
}

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
