package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// seqRand replays fixed values; once exhausted it always returns 0.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := 0
	if r.i < len(r.vals) {
		v = r.vals[r.i]
		r.i++
	}
	return v % n
}

func running(grid Grid, dir Direction, food core.Point, body ...core.Point) State {
	return State{
		Grid:          grid,
		InitialLength: 3,
		Snake:         body,
		Dir:           dir,
		Food:          food,
		HasFood:       true,
		Status:        StatusRunning,
	}
}

func TestStepEatsFoodAndGrows(t *testing.T) {
	s := running(Grid{10, 10}, DirRight, core.Pt(6, 5), core.Pt(5, 5))

	next := Step(s, Input{}, &seqRand{vals: []int{42}}, Rules{})

	assert.Equal(t, []core.Point{core.Pt(6, 5), core.Pt(5, 5)}, next.Snake)
	assert.Equal(t, 1, next.Score)
	assert.Equal(t, StatusRunning, next.Status)
	require.True(t, next.HasFood)
	assert.False(t, next.Occupies(next.Food), "food placed on snake at %s", next.Food)
	assert.True(t, next.Grid.Contains(next.Food))
}

func TestStepMovesWithoutGrowing(t *testing.T) {
	s := running(Grid{10, 10}, DirRight, core.Pt(0, 0), core.Pt(5, 5), core.Pt(4, 5), core.Pt(3, 5))

	next := Step(s, Input{}, &seqRand{}, Rules{})

	assert.Equal(t, []core.Point{core.Pt(6, 5), core.Pt(5, 5), core.Pt(4, 5)}, next.Snake)
	assert.Equal(t, 0, next.Score)
	assert.Equal(t, core.Pt(0, 0), next.Food)
	assert.Equal(t, 1, next.Ticks)
}

func TestStepSelfCollision(t *testing.T) {
	// Heading left into the first body segment
	s := running(Grid{10, 10}, DirLeft, core.Pt(0, 0), core.Pt(5, 5), core.Pt(4, 5), core.Pt(3, 5))

	next := Step(s, Input{}, &seqRand{}, Rules{})

	assert.Equal(t, StatusLost, next.Status)
	assert.Equal(t, s.Snake, next.Snake)
	assert.Equal(t, 0, next.Ticks)
}

func TestStepRejectsReversal(t *testing.T) {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(dir.String(), func(t *testing.T) {
			head := core.Pt(5, 5)
			neck := head.Add(dir.Opposite().Vector())
			s := running(Grid{10, 10}, dir, core.Pt(0, 0), head, neck)

			next := Step(s, Input{Dir: dir.Opposite()}, &seqRand{}, Rules{})

			assert.Equal(t, StatusRunning, next.Status)
			assert.Equal(t, dir, next.Dir)
			assert.Equal(t, head.Add(dir.Vector()), next.Head())
		})
	}
}

func TestStepReversalIntoBodyIsIgnored(t *testing.T) {
	s := running(Grid{10, 10}, DirRight, core.Pt(0, 0), core.Pt(5, 5), core.Pt(4, 5), core.Pt(3, 5))

	next := Step(s, Input{Dir: DirLeft}, &seqRand{}, Rules{})

	assert.Equal(t, StatusRunning, next.Status)
	assert.Equal(t, core.Pt(6, 5), next.Head())
}

func TestStepTurns(t *testing.T) {
	s := running(Grid{10, 10}, DirRight, core.Pt(0, 0), core.Pt(5, 5), core.Pt(4, 5))

	next := Step(s, Input{Dir: DirUp}, &seqRand{}, Rules{})
	assert.Equal(t, DirUp, next.Dir)
	assert.Equal(t, core.Pt(5, 4), next.Head())

	next = Step(next, Input{Dir: DirNone}, &seqRand{}, Rules{})
	assert.Equal(t, DirUp, next.Dir)
	assert.Equal(t, core.Pt(5, 3), next.Head())
}

func TestStepWallCollisionFreezesState(t *testing.T) {
	walls := []struct {
		name string
		dir  Direction
		head core.Point
	}{
		{"left", DirLeft, core.Pt(0, 5)},
		{"right", DirRight, core.Pt(9, 5)},
		{"top", DirUp, core.Pt(5, 0)},
		{"bottom", DirDown, core.Pt(5, 9)},
	}

	for _, tc := range walls {
		t.Run(tc.name, func(t *testing.T) {
			s := running(Grid{10, 10}, tc.dir, core.Pt(3, 3), tc.head)

			lost := Step(s, Input{}, &seqRand{}, Rules{})
			require.Equal(t, StatusLost, lost.Status)
			assert.Equal(t, s.Snake, lost.Snake)

			// No further mutation until restart, whatever the input
			for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
				again := Step(lost, Input{Dir: d}, &seqRand{}, Rules{})
				assert.Equal(t, lost, again)
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	body := []core.Point{core.Pt(5, 5), core.Pt(4, 5), core.Pt(3, 5)}
	s := running(Grid{10, 10}, DirRight, core.Pt(6, 5), body...)
	orig := append([]core.Point(nil), s.Snake...)

	_ = Step(s, Input{Dir: DirDown}, &seqRand{}, Rules{})
	_ = Step(s, Input{}, &seqRand{}, Rules{})

	assert.Equal(t, orig, s.Snake)
}

func TestStepTailChase(t *testing.T) {
	// A 2x2 loop; moving down puts the head on the tail cell.
	body := []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1), core.Pt(0, 1)}
	s := running(Grid{3, 3}, DirLeft, core.Pt(2, 2), body...)

	strict := Step(s, Input{Dir: DirDown}, &seqRand{}, Rules{})
	assert.Equal(t, StatusLost, strict.Status)

	chase := Step(s, Input{Dir: DirDown}, &seqRand{}, Rules{TailChase: true})
	require.Equal(t, StatusRunning, chase.Status)
	assert.Equal(t, []core.Point{core.Pt(0, 1), core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1)}, chase.Snake)
}

func TestStepWinsWhenGridFills(t *testing.T) {
	s := running(Grid{2, 1}, DirRight, core.Pt(1, 0), core.Pt(0, 0))
	s.InitialLength = 1

	won := Step(s, Input{}, &seqRand{}, Rules{})

	assert.Equal(t, StatusWon, won.Status)
	assert.False(t, won.HasFood)
	assert.Equal(t, 1, won.Score)
	assert.Len(t, won.Snake, 2)

	assert.Equal(t, won, Step(won, Input{Dir: DirLeft}, &seqRand{}, Rules{}))

	fresh := Step(won, Input{Restart: true}, &seqRand{}, Rules{})
	assert.Equal(t, StatusRunning, fresh.Status)
	assert.Equal(t, 0, fresh.Score)
	assert.True(t, fresh.HasFood)
}

func TestRestart(t *testing.T) {
	grid := Grid{25, 18}
	s := NewState(grid, 4, &seqRand{})

	// Restart while running is ignored
	moved := Step(s, Input{Restart: true}, &seqRand{}, Rules{})
	assert.Equal(t, StatusRunning, moved.Status)
	assert.Equal(t, 1, moved.Ticks)

	lost := moved
	lost.Score = 7
	lost.Status = StatusLost

	fresh := Step(lost, Input{Restart: true}, &seqRand{vals: []int{3}}, Rules{})
	assert.Equal(t, StatusRunning, fresh.Status)
	assert.Equal(t, 0, fresh.Score)
	assert.Equal(t, 0, fresh.Ticks)
	assert.Equal(t, DirRight, fresh.Dir)
	assert.Equal(t, NewState(grid, 4, &seqRand{vals: []int{3}}), fresh)
}

func TestNewState(t *testing.T) {
	s := NewState(Grid{25, 18}, 4, &seqRand{})

	assert.Equal(t, []core.Point{core.Pt(12, 9), core.Pt(11, 9), core.Pt(10, 9), core.Pt(9, 9)}, s.Snake)
	assert.Equal(t, DirRight, s.Dir)
	assert.Equal(t, StatusRunning, s.Status)
	assert.True(t, s.HasFood)
	assert.False(t, s.Occupies(s.Food))
	// First free cell in row-major order
	assert.Equal(t, core.Pt(0, 0), s.Food)
}

func TestNewStateClampsLength(t *testing.T) {
	s := NewState(Grid{6, 6}, 50, &seqRand{})
	assert.Len(t, s.Snake, 4) // head at x=3 down to x=0
	assert.Equal(t, core.Pt(0, 3), s.Snake[3])

	s = NewState(Grid{6, 6}, 0, &seqRand{})
	assert.Len(t, s.Snake, 1)
}

func TestPlaceFood(t *testing.T) {
	grid := Grid{3, 2}
	body := []core.Point{core.Pt(0, 0), core.Pt(1, 0)}

	// Free cells row-major: (2,0) (0,1) (1,1) (2,1)
	p, ok := PlaceFood(grid, body, &seqRand{vals: []int{1}})
	require.True(t, ok)
	assert.Equal(t, core.Pt(0, 1), p)

	p, ok = PlaceFood(grid, body, &seqRand{vals: []int{3}})
	require.True(t, ok)
	assert.Equal(t, core.Pt(2, 1), p)

	full := []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0), core.Pt(2, 1), core.Pt(1, 1), core.Pt(0, 1)}
	_, ok = PlaceFood(grid, full, &seqRand{})
	assert.False(t, ok)
}

// TestStepInvariantsUnderRandomPlay drives the updater with random input and
// checks growth, scoring, food placement and body uniqueness after every tick.
func TestStepInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := rand.New(rand.NewSource(11))
	dirs := []Direction{DirNone, DirNone, DirUp, DirDown, DirLeft, DirRight}

	for _, rules := range []Rules{{}, {TailChase: true}} {
		s := NewState(Grid{8, 6}, 3, rng)
		restarts := 0

		for i := 0; i < 20000; i++ {
			prev := s
			in := Input{Dir: dirs[inputs.Intn(len(dirs))], Restart: true}
			s = Step(s, in, rng, rules)

			if prev.Status != StatusRunning {
				restarts++
				require.Equal(t, 0, s.Score)
				require.Equal(t, StatusRunning, s.Status)
				continue
			}

			grew := len(s.Snake) - len(prev.Snake)
			switch s.Status {
			case StatusLost:
				require.Equal(t, prev.Snake, s.Snake)
				require.Equal(t, prev.Score, s.Score)
				continue
			default:
				require.Contains(t, []int{0, 1}, grew)
				require.Equal(t, prev.Score+grew, s.Score)
			}

			seen := make(map[core.Point]bool, len(s.Snake))
			for _, p := range s.Snake {
				require.True(t, s.Grid.Contains(p))
				require.False(t, seen[p], "duplicate body cell %s", p)
				seen[p] = true
			}
			if s.HasFood {
				require.False(t, seen[s.Food], "food on snake at %s", s.Food)
			} else {
				require.Equal(t, StatusWon, s.Status)
			}
		}
		assert.Positive(t, restarts)
	}
}
