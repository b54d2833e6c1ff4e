package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// NewState builds a fresh running game: the snake lies horizontally with its
// head at the grid centre facing right, and food is placed on a free cell.
// initialLength is clamped so the whole body fits on the grid.
func NewState(grid Grid, initialLength int, rng RandSource) State {
	cx, cy := grid.Bounds().Center()
	length := core.Clamp(initialLength, 1, cx+1)

	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Pt(cx-i, cy)
	}

	s := State{
		Grid:          grid,
		InitialLength: initialLength,
		Snake:         body,
		Dir:           DirRight,
		Status:        StatusRunning,
	}
	s.Food, s.HasFood = PlaceFood(grid, body, rng)
	if !s.HasFood {
		s.Status = StatusWon
	}
	return s
}

// Restart discards s and returns a fresh state on the same grid.
func Restart(s State, rng RandSource) State {
	return NewState(s.Grid, s.InitialLength, rng)
}

// PlaceFood picks a uniformly random grid cell not covered by body.
// It returns false when the body fills the grid.
func PlaceFood(grid Grid, body []core.Point, rng RandSource) (core.Point, bool) {
	occupied := make(map[core.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	free := make([]core.Point, 0, max(grid.Cells()-len(occupied), 0))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := core.Pt(x, y)
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Pt(-1, -1), false
	}
	return free[rng.Intn(len(free))], true
}

// Step advances the game by one tick.
//
// Restart is honoured only after the game has ended; a Lost or Won state is
// otherwise returned unchanged. A turn is ignored when it is DirNone or exactly
// opposite the current direction. Hitting a wall or the body ends the game
// without moving the snake.
func Step(s State, in Input, rng RandSource, rules Rules) State {
	if s.Status != StatusRunning {
		if in.Restart {
			return Restart(s, rng)
		}
		return s
	}
	if len(s.Snake) == 0 {
		return s
	}

	dir := s.Dir
	if in.Dir.Valid() && in.Dir != s.Dir.Opposite() {
		dir = in.Dir
	}

	head := s.Snake[0].Add(dir.Vector())
	eats := s.HasFood && head == s.Food

	if !s.Grid.Contains(head) || hitsBody(s.Snake, head, rules.TailChase && !eats) {
		s.Status = StatusLost
		return s
	}

	keep := len(s.Snake)
	if !eats {
		keep--
	}
	body := make([]core.Point, 0, keep+1)
	body = append(body, head)
	body = append(body, s.Snake[:keep]...)

	s.Snake = body
	s.Dir = dir
	s.Ticks++

	if eats {
		s.Score++
		s.Food, s.HasFood = PlaceFood(s.Grid, s.Snake, rng)
		if !s.HasFood {
			s.Status = StatusWon
		}
	}
	return s
}

// hitsBody reports whether p lands on a body cell. When skipTail is set the
// last segment is ignored because it moves away this tick.
func hitsBody(body []core.Point, p core.Point, skipTail bool) bool {
	n := len(body)
	if skipTail {
		n--
	}
	for i := 0; i < n; i++ {
		if body[i] == p {
			return true
		}
	}
	return false
}
