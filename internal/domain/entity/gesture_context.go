package entity

import "time"

// GestureContext is the snapshot taken at pointer-down. It lives only until
// the matching pointer-up.
type GestureContext struct {
	Pointer         PointerID
	InitialTouch    Point
	InitialGeometry Geometry
	DownTime        time.Time
	Moved           bool
}

// Displacement returns the distance of p from the initial touch.
func (c GestureContext) Displacement(p Point) float64 {
	return p.Sub(c.InitialTouch).Len()
}

// Elapsed returns the time since pointer-down.
func (c GestureContext) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.DownTime)
}
