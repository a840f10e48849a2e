package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfCircleShape(t *testing.T) {
	peek := Geometry{X: 0, Y: 400, Width: 500, Height: 1000}
	left := HalfCircleShape(EdgeLeft, peek)
	assert.Equal(t, CornerRadii{TopRight: 250, BottomRight: 250}, left.Radii)
	assert.Zero(t, left.ContentAlpha)

	right := HalfCircleShape(EdgeRight, peek)
	assert.Equal(t, CornerRadii{TopLeft: 250, BottomLeft: 250}, right.Radii)
}

func TestShapeLerp_ClampsAlpha(t *testing.T) {
	from := FloatingShape(16)
	to := HalfCircleShape(EdgeLeft, Geometry{Width: 100, Height: 200})

	mid := from.Lerp(to, 0.5)
	assert.InDelta(t, 8, mid.Radii.TopLeft, 1e-9)
	assert.InDelta(t, 33, mid.Radii.TopRight, 1e-9)
	assert.InDelta(t, 0.5, mid.ContentAlpha, 1e-9)

	over := from.Lerp(to, 1.2)
	assert.Equal(t, 0.0, over.ContentAlpha)
	under := to.Lerp(from, 1.2)
	assert.Equal(t, 1.0, under.ContentAlpha)
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, ScaleMin, ClampScale(0.01))
	assert.Equal(t, ScaleMax, ClampScale(12))
	assert.Equal(t, 1.5, ClampScale(1.5))
	assert.Equal(t, 150, ScalePercentage(1.5))
}

func TestShapeCovers(t *testing.T) {
	peek := Geometry{X: 0, Y: 0, Width: 100, Height: 200}
	shape := HalfCircleShape(EdgeLeft, peek)

	assert.True(t, shape.Covers(peek, 1, 1), "docked side keeps square corners")
	assert.False(t, shape.Covers(peek, 99, 1), "rounded corner is cut")
	assert.True(t, shape.Covers(peek, 99, 100), "middle of the curved side")
	assert.False(t, shape.Covers(peek, 100, 100), "outside the geometry")

	floating := FloatingShape(0)
	assert.True(t, floating.Covers(peek, 99, 199))
}
