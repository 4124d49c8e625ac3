package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Direction is the snake's heading.
type Direction byte

const (
	DirLeft  Direction = 'l'
	DirUp    Direction = 'u'
	DirRight Direction = 'r'
	DirDown  Direction = 'd'
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirLeft, DirUp, DirRight, DirDown:
		return true
	}
	return false
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return d
}

// Step returns the offset of one move of the given edge length.
func (d Direction) Step(edge int) core.Vec2 {
	switch d {
	case DirLeft:
		return core.V(-edge, 0)
	case DirRight:
		return core.V(edge, 0)
	case DirUp:
		return core.V(0, -edge)
	case DirDown:
		return core.V(0, edge)
	}
	return core.Vec2{}
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
		return "unknown"
	}
}

// directionForAction maps steering actions to headings.
func directionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return 0, false
}
