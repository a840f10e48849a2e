package entity

import (
	"math"
	"time"
)

// PointerAction is the phase of a raw pointer event.
type PointerAction uint8

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerID identifies one finger (or the mouse) across a sequence.
type PointerID int

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the distance of p from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// PointerEvent is a raw pointer sample forwarded by the host.
// Coordinates are screen pixels unless documented otherwise.
type PointerEvent struct {
	ID     PointerID
	Action PointerAction
	X, Y   float64
	Time   time.Time
}

// Point returns the event position.
func (e PointerEvent) Point() Point {
	return Point{X: e.X, Y: e.Y}
}
