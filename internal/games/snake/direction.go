package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
// The zero value DirNone means "no direction input".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Vector returns the unit cell offset for one move in direction d.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	case DirRight:
		return core.Pt(1, 0)
	default:
		return core.Point{}
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFromAction maps a platform action to a direction.
func DirectionFromAction(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}
