// Package replay records the events fed to a snake game so the run can be
// reproduced later. A game is deterministic given its random source, so a seed plus
// the ordered inputs and ticks describe a run completely.
package replay

import (
	"fmt"
	"math/rand"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Kind identifies what an event fed to the game.
type Kind uint8

const (
	KindInput Kind = iota + 1
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTick:
		return "tick"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "input":
		return KindInput, nil
	case "tick":
		return KindTick, nil
	default:
		return 0, fmt.Errorf("replay: unknown event kind %q", s)
	}
}

// Event is one call into the game. Dir is set for inputs, DT for ticks.
type Event struct {
	Kind Kind
	Dir  snake.Direction
	DT   float64
}

// Journal is everything needed to reproduce a run.
type Journal struct {
	Seed   int64
	Rules  config.Rules
	Events []Event
}

// NewSource returns the random source a run with the given seed uses.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Play re-runs a journal from its seed and returns the resulting game.
func Play(j Journal) *snake.Game {
	g := snake.New(j.Rules, NewSource(j.Seed))
	for _, ev := range j.Events {
		apply(g, ev)
	}
	return g
}

func apply(g *snake.Game, ev Event) {
	switch ev.Kind {
	case KindInput:
		g.ApplyInput(ev.Dir)
	case KindTick:
		g.Tick(ev.DT)
	}
}

// EncodeRules serializes rules for storage next to a run.
func EncodeRules(r config.Rules) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("replay: cannot encode rules: %w", err)
	}
	return string(data), nil
}

// DecodeRules parses rules written by EncodeRules.
func DecodeRules(s string) (config.Rules, error) {
	var r config.Rules
	if err := yaml.Unmarshal([]byte(s), &r); err != nil {
		return r, fmt.Errorf("replay: cannot decode rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return r, fmt.Errorf("replay: stored rules are invalid: %w", err)
	}
	return r, nil
}

// Recorder owns a game and journals every call that can change it.
type Recorder struct {
	rng     *rand.Rand
	game    *snake.Game
	journal Journal
}

// NewRecorder starts a recorded game.
func NewRecorder(rules config.Rules, seed int64) *Recorder {
	rng := NewSource(seed)
	return &Recorder{
		rng:     rng,
		game:    snake.New(rules, rng),
		journal: Journal{Seed: seed, Rules: rules},
	}
}

// Game returns the recorded game. Callers must change it only through the recorder.
func (r *Recorder) Game() *snake.Game {
	return r.game
}

// Input steers the game. Inputs that leave the heading unchanged, such as reversals,
// repeats and anything after game over, are not journaled.
func (r *Recorder) Input(d snake.Direction) {
	before := r.game.Direction()
	r.game.ApplyInput(d)
	if r.game.Direction() == before {
		return
	}
	r.journal.Events = append(r.journal.Events, Event{Kind: KindInput, Dir: d})
}

// Tick advances the game. Ticks outside a running round change nothing and are
// not journaled.
func (r *Recorder) Tick(dt float64) {
	if r.game.Status() != snake.StatusRunning {
		return
	}
	r.game.Tick(dt)
	r.journal.Events = append(r.journal.Events, Event{Kind: KindTick, DT: dt})
}

// Restart reseeds the random source, restarts the game and begins a new journal.
func (r *Recorder) Restart(seed int64) {
	r.rng.Seed(seed)
	r.game.Restart()
	r.journal = Journal{Seed: seed, Rules: r.game.Rules()}
}

// Journal returns a copy of the journal so far.
func (r *Recorder) Journal() Journal {
	j := r.journal
	j.Events = slices.Clone(j.Events)
	return j
}
