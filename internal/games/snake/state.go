package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Status is the lifecycle phase of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusLost
	StatusWon // Every cell is occupied by the snake
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Grid is the fixed-size playfield. (0,0) is the top-left cell.
type Grid struct {
	Width  int
	Height int
}

// Bounds returns the grid as a rectangle at the origin.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p core.Point) bool {
	return g.Bounds().ContainsPoint(p)
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Bounds().Area()
}

// State is the complete game state advanced by Step.
// It is a value: Step returns a new State and never mutates the Snake slice
// of the one it was given.
type State struct {
	Grid          Grid
	InitialLength int
	Snake         []core.Point // Head at index 0
	Dir           Direction
	Food          core.Point
	HasFood       bool // False only once the grid is full
	Score         int
	Status        Status
	Ticks         int // Moves applied since the last restart
}

// Head returns the head cell. The snake is never empty after NewState.
func (s State) Head() core.Point {
	return s.Snake[0]
}

// Occupies reports whether the snake covers p.
func (s State) Occupies(p core.Point) bool {
	for _, seg := range s.Snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Input is the pending input sampled once per tick.
type Input struct {
	Dir     Direction // DirNone for no turn
	Restart bool
}

// Rules holds rule variations that change the outcome of a move.
type Rules struct {
	// TailChase lets the head enter the cell the tail leaves on the same tick.
	TailChase bool
}

// RandSource is the randomness used for food placement.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}
