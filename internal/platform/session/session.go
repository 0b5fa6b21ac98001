// Package session drives one player's games for a front end: it turns actions and
// frame times into game calls, records every run, and hands finished runs to a sink.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Sink receives each finished run. *storage.Store implements it.
type Sink interface {
	SaveRun(j replay.Journal, final snake.Snapshot) (string, error)
}

// Options configures a session.
type Options struct {
	Config  config.Config
	Seed    *int64       // Seed of the first run; nil picks one from NewSeed
	NewSeed func() int64 // Seeds for restarts; nil uses the wall clock
	Sink    Sink         // nil disables saving runs
	Logger  *log.Logger  // nil discards log output
}

// Session owns the game, its recorder and its clock. It is not safe for concurrent use.
type Session struct {
	rec     *replay.Recorder
	clock   *core.Clock
	sink    Sink
	logger  *log.Logger
	newSeed func() int64

	runSaved  bool
	lastRunID string
}

// New creates a session and starts its first run.
func New(opts Options) *Session {
	newSeed := opts.NewSeed
	if newSeed == nil {
		newSeed = func() int64 { return time.Now().UnixNano() }
	}
	var seed int64
	if opts.Seed != nil {
		seed = *opts.Seed
	} else {
		seed = newSeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	logger.Debug("run started", "seed", seed)
	return &Session{
		rec:     replay.NewRecorder(opts.Config.Rules(), seed),
		clock:   core.NewClock(opts.Config.Timing.UpdatesPerSecond),
		sink:    opts.Sink,
		logger:  logger,
		newSeed: newSeed,
	}
}

// Handle applies an action. Directions steer the snake; restart only works after game
// over. Quit is left to the front end.
func (s *Session) Handle(a core.Action) {
	switch {
	case a.IsDirectional():
		s.rec.Input(snake.DirectionFor(a))
	case a == core.ActionRestart:
		if s.Game().GameOver() {
			s.Restart()
		}
	}
}

// Advance feeds dt seconds of frame time to the clock and ticks the game at most once.
func (s *Session) Advance(dt float64) {
	acc, ok := s.clock.Advance(dt)
	if !ok {
		return
	}
	s.rec.Tick(acc)
	s.finishRun()
}

// finishRun hands a finished run to the sink, once per run. Failures are logged and
// the game carries on.
func (s *Session) finishRun() {
	g := s.Game()
	if !g.GameOver() || s.runSaved {
		return
	}
	s.runSaved = true

	snap := g.Snapshot()
	s.logger.Info("game over", "score", snap.Score, "length", snap.SnakeLen, "ticks", snap.Ticks)

	if s.sink == nil {
		return
	}
	id, err := s.sink.SaveRun(s.rec.Journal(), snap)
	if err != nil {
		s.logger.Error("could not save run", "error", err)
		return
	}
	s.lastRunID = id
	s.logger.Info("run saved", "id", id)
}

// Restart starts a new run with a fresh seed.
func (s *Session) Restart() {
	seed := s.newSeed()
	s.rec.Restart(seed)
	s.clock.Reset()
	s.runSaved = false
	s.lastRunID = ""
	s.logger.Debug("run started", "seed", seed)
}

// Game returns the game being played. Change it only through the session.
func (s *Session) Game() *snake.Game {
	return s.rec.Game()
}

// Journal returns the journal of the current run.
func (s *Session) Journal() replay.Journal {
	return s.rec.Journal()
}

// LastRunID returns the ID the sink gave the current run, or "" if it was not saved.
func (s *Session) LastRunID() string {
	return s.lastRunID
}
