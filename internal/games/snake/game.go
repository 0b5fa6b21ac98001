// Package snake implements the snake game state: discrete-tick movement on a fixed
// grid, wall and self collision, food placement with timed bonus food, and scoring.
//
// The package does no I/O and never fails. Front ends feed it direction intents and
// time deltas and read its state back to draw it.
package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Source is the random source used for food placement.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Food is the single food item on the board.
type Food struct {
	Pos   Point
	Bonus bool
	Timer float64 // Seconds left before a bonus food is replaced; 0 for normal food
}

// Status is the coarse state of a game.
type Status int

const (
	StatusIdle Status = iota // Waiting for the first direction
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the complete state of one round of snake.
type Game struct {
	rules config.Rules
	rng   Source

	body      []Point // Head at index 0
	direction Direction
	food      Food
	score     uint
	ticks     uint64 // Ticks that reached the movement step

	gameOver bool
	started  bool
}

// New creates a game with a one-segment snake in the middle of the grid, no heading,
// and freshly placed food.
func New(rules config.Rules, rng Source) *Game {
	g := &Game{
		rules: rules,
		rng:   rng,
		body: []Point{
			{X: rules.Grid.Width / 2, Y: rules.Grid.Height / 2},
		},
		direction: DirNone,
	}
	g.PlaceFood()
	return g
}

// PlaceFood moves the food to a uniformly random free cell and rolls whether it is a
// bonus. Positions are drawn until one misses the snake; the bonus roll is a separate
// draw taken after a position is accepted.
//
// When the snake covers every cell there is nowhere left to go and the round ends.
func (g *Game) PlaceFood() {
	if len(g.body) >= g.rules.Grid.Width*g.rules.Grid.Height {
		g.gameOver = true
		return
	}
	for {
		pos := Point{
			X: g.rng.Intn(g.rules.Grid.Width),
			Y: g.rng.Intn(g.rules.Grid.Height),
		}
		if slices.Contains(g.body, pos) {
			continue
		}

		bonus := g.rng.Float64() < g.rules.Food.BonusProbability
		g.food = Food{Pos: pos, Bonus: bonus}
		if bonus {
			g.food.Timer = g.rules.Food.BonusDuration
		}
		return
	}
}

// ApplyInput steers the snake. Input is ignored after game over, and a heading that
// exactly reverses the current one is rejected even for a one-segment snake.
// The first accepted heading starts the game.
func (g *Game) ApplyInput(d Direction) {
	if g.gameOver || d == DirNone {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.direction = d
	g.started = true
}

// Tick advances the simulation by one step; dt is the time since the previous tick
// and only drives the bonus food timer.
func (g *Game) Tick(dt float64) {
	if g.gameOver || !g.started {
		return
	}

	if g.food.Bonus {
		g.food.Timer -= dt
		if g.food.Timer <= 0 {
			g.PlaceFood()
		}
	}

	if g.direction == DirNone {
		return
	}
	g.ticks++

	head := g.body[0].Add(g.direction.Delta())

	if !g.InBounds(head) {
		g.gameOver = true
		return
	}

	// The tail cell is treated as vacated even when this move eats and the tail stays.
	if slices.Contains(g.body[:len(g.body)-1], head) {
		g.gameOver = true
		return
	}

	g.body = slices.Insert(g.body, 0, head)

	if head == g.food.Pos {
		if g.food.Bonus {
			g.score += g.rules.Food.BonusScore
		} else {
			g.score += g.rules.Food.NormalScore
		}
		g.PlaceFood()
		return
	}

	g.body = g.body[:len(g.body)-1]
}

// Restart throws the round away and starts over as if New had been called with the
// same rules and random source.
func (g *Game) Restart() {
	*g = *New(g.rules, g.rng)
}

// InBounds reports whether p lies on the grid.
func (g *Game) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.rules.Grid.Width && p.Y >= 0 && p.Y < g.rules.Grid.Height
}

// Body returns a copy of the snake, head first.
func (g *Game) Body() []Point {
	return slices.Clone(g.body)
}

// Head returns the head position.
func (g *Game) Head() Point {
	return g.body[0]
}

// Len returns the number of segments.
func (g *Game) Len() int {
	return len(g.body)
}

// Occupies reports whether any segment sits on p.
func (g *Game) Occupies(p Point) bool {
	return slices.Contains(g.body, p)
}

// Food returns the current food.
func (g *Game) Food() Food {
	return g.food
}

// Score returns the points collected this round.
func (g *Game) Score() uint {
	return g.score
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// GameOver reports whether the round has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Started reports whether a heading has been accepted this round.
func (g *Game) Started() bool {
	return g.started
}

// Ticks returns how many ticks moved (or tried to move) the snake this round.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() config.Rules {
	return g.rules
}

// Status returns the state machine position.
func (g *Game) Status() Status {
	switch {
	case g.gameOver:
		return StatusOver
	case g.started:
		return StatusRunning
	default:
		return StatusIdle
	}
}
