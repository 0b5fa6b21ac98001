package snake

// Snapshot is a comparable summary of a game, used for determinism checks and replay
// verification.
type Snapshot struct {
	Ticks      uint64
	Score      uint
	SnakeLen   int
	Head       Point
	Tail       Point
	Dir        Direction
	Food       Point
	FoodBonus  bool
	FoodTimer  float64
	State      Status
	GridWidth  int
	GridHeight int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:      g.ticks,
		Score:      g.score,
		SnakeLen:   len(g.body),
		Head:       g.body[0],
		Tail:       g.body[len(g.body)-1],
		Dir:        g.direction,
		Food:       g.food.Pos,
		FoodBonus:  g.food.Bonus,
		FoodTimer:  g.food.Timer,
		State:      g.Status(),
		GridWidth:  g.rules.Grid.Width,
		GridHeight: g.rules.Grid.Height,
	}
}
