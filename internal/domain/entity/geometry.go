// Package entity defines domain entities for the overlay window.
package entity

import "math"

// Orientation is the screen orientation a geometry was laid out for.
type Orientation uint8

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

func (o Orientation) String() string {
	if o == OrientationLandscape {
		return "landscape"
	}
	return "portrait"
}

// Geometry is the overlay window's screen position and size.
// It is a value type: callers exchange copies, never references.
type Geometry struct {
	X, Y          int // Top-left position in screen pixels
	Width, Height int
	Orientation   Orientation
}

// Right returns the x coordinate of the right edge.
func (g Geometry) Right() int {
	return g.X + g.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (g Geometry) Bottom() int {
	return g.Y + g.Height
}

// Center returns the center point of the rectangle.
func (g Geometry) Center() (cx, cy int) {
	return g.X + g.Width/2, g.Y + g.Height/2
}

// Contains reports whether the screen point lies inside the geometry.
func (g Geometry) Contains(x, y float64) bool {
	return x >= float64(g.X) && x < float64(g.Right()) &&
		y >= float64(g.Y) && y < float64(g.Bottom())
}

// IsZero reports whether the geometry has no area.
func (g Geometry) IsZero() bool {
	return g.Width <= 0 || g.Height <= 0
}

// Lerp interpolates every field between g and target.
// The fraction is not clamped so overshooting easings carry through.
func (g Geometry) Lerp(target Geometry, fraction float64) Geometry {
	return Geometry{
		X:           lerpInt(g.X, target.X, fraction),
		Y:           lerpInt(g.Y, target.Y, fraction),
		Width:       lerpInt(g.Width, target.Width, fraction),
		Height:      lerpInt(g.Height, target.Height, fraction),
		Orientation: target.Orientation,
	}
}

// Screen describes the display the overlay lives on.
type Screen struct {
	Width, Height int
	Density       float64 // Pixels per density-independent pixel
}

// Px converts density-independent pixels to screen pixels.
func (s Screen) Px(dp float64) int {
	density := s.Density
	if density <= 0 {
		density = 1
	}
	return int(math.Round(dp * density))
}

// Orientation returns the orientation implied by the screen dimensions.
func (s Screen) Orientation() Orientation {
	if s.Width > s.Height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// Limits bounds the overlay size from below; the screen bounds it from above.
type Limits struct {
	MinWidth, MinHeight int
}

// ClampSize constrains width and height to [min, screen dimension].
// A minimum larger than the screen collapses to the screen dimension.
func ClampSize(g Geometry, screen Screen, limits Limits) Geometry {
	g.Width = clampInt(g.Width, min(limits.MinWidth, screen.Width), screen.Width)
	g.Height = clampInt(g.Height, min(limits.MinHeight, screen.Height), screen.Height)
	return g
}

// ClampPosition keeps at least a third of the width on screen horizontally
// and the whole window on screen vertically.
func ClampPosition(g Geometry, screen Screen) Geometry {
	g.X = clampInt(g.X, -g.Width/3, screen.Width-g.Width*2/3)
	g.Y = clampInt(g.Y, 0, max(screen.Height-g.Height, 0))
	return g
}

// DefaultGeometry returns a screen-ratio rectangle centered horizontally and
// placed at one third of the remaining vertical space.
func DefaultGeometry(screen Screen, widthRatio, heightRatio float64, limits Limits) Geometry {
	g := Geometry{
		Width:       int(float64(screen.Width) * widthRatio),
		Height:      int(float64(screen.Height) * heightRatio),
		Orientation: screen.Orientation(),
	}
	g = ClampSize(g, screen, limits)
	g.X = (screen.Width - g.Width) / 2
	g.Y = (screen.Height - g.Height) / 3
	return g
}

func lerpInt(start, end int, fraction float64) int {
	return start + int(math.Round(float64(end-start)*fraction))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
