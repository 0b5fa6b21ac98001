package replay

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func defaultRules() config.Rules {
	return config.Default().Rules()
}

// drive plays a scripted session: a turn every few ticks until the game ends or the
// step budget runs out.
func drive(r *Recorder, steps int) {
	turns := []snake.Direction{snake.DirRight, snake.DirDown, snake.DirLeft, snake.DirUp}
	for i := range steps {
		if i%7 == 0 {
			r.Input(turns[(i/7)%len(turns)])
		}
		r.Tick(0.1 + float64(i%3)*0.01)
		if r.Game().GameOver() {
			return
		}
	}
}

func TestPlayReproducesRecordedGame(t *testing.T) {
	for _, seed := range []int64{1, 42, 2024, -7} {
		r := NewRecorder(defaultRules(), seed)
		drive(r, 200)

		got := Play(r.Journal())
		if got.Snapshot() != r.Game().Snapshot() {
			t.Errorf("seed %d: replay diverged:\n got %+v\nwant %+v", seed, got.Snapshot(), r.Game().Snapshot())
		}
	}
}

func TestRecorderMatchesUnrecordedGame(t *testing.T) {
	r := NewRecorder(defaultRules(), 99)
	plain := snake.New(defaultRules(), rand.New(rand.NewSource(99)))

	r.Input(snake.DirUp)
	plain.ApplyInput(snake.DirUp)
	for range 5 {
		r.Tick(0.1)
		plain.Tick(0.1)
	}

	if r.Game().Snapshot() != plain.Snapshot() {
		t.Errorf("Recording should not change the game:\n got %+v\nwant %+v", r.Game().Snapshot(), plain.Snapshot())
	}
}

func TestRecorderSkipsNoops(t *testing.T) {
	r := NewRecorder(defaultRules(), 5)

	r.Tick(0.1) // Not started yet
	r.Input(snake.DirNone)
	if n := len(r.Journal().Events); n != 0 {
		t.Fatalf("Expected no events before the first direction, got %d", n)
	}

	r.Input(snake.DirUp)
	for range 30 {
		r.Tick(0.1)
	}
	if !r.Game().GameOver() {
		t.Fatal("Expected the snake to hit the top wall")
	}

	// One input plus the ticks up to and including the fatal one.
	j := r.Journal()
	if j.Events[0] != (Event{Kind: KindInput, Dir: snake.DirUp}) {
		t.Errorf("First event = %+v, expected the up input", j.Events[0])
	}
	if n := len(j.Events); n != 1+11 {
		t.Errorf("Expected 12 events, got %d", n)
	}

	r.Input(snake.DirLeft)
	r.Tick(0.1)
	if n := len(r.Journal().Events); n != 12 {
		t.Errorf("Events after game over should not be journaled, got %d", n)
	}
}

func TestRecorderSkipsRejectedTurns(t *testing.T) {
	r := NewRecorder(defaultRules(), 5)

	r.Input(snake.DirRight)
	r.Input(snake.DirLeft)  // Reversal
	r.Input(snake.DirRight) // Already heading right
	r.Tick(0.1)
	r.Input(snake.DirUp)

	want := []Event{
		{Kind: KindInput, Dir: snake.DirRight},
		{Kind: KindTick, DT: 0.1},
		{Kind: KindInput, Dir: snake.DirUp},
	}
	if got := r.Journal().Events; !slices.Equal(got, want) {
		t.Errorf("Events = %+v, expected %+v", got, want)
	}
	if r.Game().Direction() != snake.DirUp {
		t.Errorf("Direction = %v, expected up", r.Game().Direction())
	}
}

func TestRecorderRestart(t *testing.T) {
	r := NewRecorder(defaultRules(), 10)
	drive(r, 50)

	r.Restart(77)

	j := r.Journal()
	if j.Seed != 77 || len(j.Events) != 0 {
		t.Fatalf("Restart should start a fresh journal, got seed %d with %d events", j.Seed, len(j.Events))
	}

	fresh := snake.New(defaultRules(), NewSource(77))
	if r.Game().Snapshot() != fresh.Snapshot() {
		t.Errorf("Restarted game should match a new game with the same seed:\n got %+v\nwant %+v",
			r.Game().Snapshot(), fresh.Snapshot())
	}

	drive(r, 100)
	if Play(r.Journal()).Snapshot() != r.Game().Snapshot() {
		t.Error("Run after restart should replay from its own seed")
	}
}

func TestJournalIsACopy(t *testing.T) {
	r := NewRecorder(defaultRules(), 3)
	r.Input(snake.DirLeft)

	j := r.Journal()
	j.Events[0].Dir = snake.DirRight

	if r.Journal().Events[0].Dir != snake.DirLeft {
		t.Error("Journal() should not expose internal storage")
	}
}

func TestRulesRoundTrip(t *testing.T) {
	rules := defaultRules()
	rules.Grid.Width = 12
	rules.Food.BonusProbability = 0.25

	s, err := EncodeRules(rules)
	if err != nil {
		t.Fatalf("EncodeRules() failed: %v", err)
	}
	if !strings.Contains(s, "bonus_probability: 0.25") {
		t.Errorf("Expected yaml field names in encoded rules:\n%s", s)
	}

	got, err := DecodeRules(s)
	if err != nil {
		t.Fatalf("DecodeRules() failed: %v", err)
	}
	if got != rules {
		t.Errorf("DecodeRules() = %+v, expected %+v", got, rules)
	}
}

func TestDecodeRulesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "grid: [1, 2"},
		{"empty grid", "grid:\n  width: 0\n  height: 0\n"},
		{"bad probability", "grid:\n  width: 10\n  height: 10\nfood:\n  bonus_probability: 2\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRules(tc.yaml); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindInput, KindTick} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("jump"); err == nil {
		t.Error("Expected an error for an unknown kind")
	}
}
