package entity

// CornerRadii holds the four corner radii of the overlay silhouette, in pixels.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformRadii returns radii with the same value on every corner.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Lerp interpolates each corner towards target.
func (c CornerRadii) Lerp(target CornerRadii, fraction float64) CornerRadii {
	return CornerRadii{
		TopLeft:     lerpFloat(c.TopLeft, target.TopLeft, fraction),
		TopRight:    lerpFloat(c.TopRight, target.TopRight, fraction),
		BottomRight: lerpFloat(c.BottomRight, target.BottomRight, fraction),
		BottomLeft:  lerpFloat(c.BottomLeft, target.BottomLeft, fraction),
	}
}

// Shape is what the shape renderer draws on top of the geometry.
type Shape struct {
	Radii CornerRadii
	// ContentAlpha is the opacity of the embedded content, 0..1.
	ContentAlpha float64
}

// FloatingShape is the shape of a free-floating overlay.
func FloatingShape(cornerRadius float64) Shape {
	return Shape{Radii: UniformRadii(cornerRadius), ContentAlpha: 1}
}

// HalfCircleShape is the docked peek silhouette for the peek geometry:
// square corners on the docked side and, on the opposite side, corners of
// half the peek's shorter dimension.
func HalfCircleShape(side EdgeState, peek Geometry) Shape {
	r := float64(min(peek.Width, peek.Height)) / 2
	var radii CornerRadii
	switch side {
	case EdgeLeft:
		radii = CornerRadii{TopRight: r, BottomRight: r}
	case EdgeRight:
		radii = CornerRadii{TopLeft: r, BottomLeft: r}
	}
	return Shape{Radii: radii}
}

// Lerp interpolates radii and alpha towards target. Alpha stays within 0..1
// even when an overshooting easing pushes the fraction past 1.
func (s Shape) Lerp(target Shape, fraction float64) Shape {
	alpha := lerpFloat(s.ContentAlpha, target.ContentAlpha, fraction)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return Shape{
		Radii:        s.Radii.Lerp(target.Radii, fraction),
		ContentAlpha: alpha,
	}
}

func lerpFloat(start, end, fraction float64) float64 {
	return start + (end-start)*fraction
}

// Covers reports whether the point (x, y), in screen pixels, lies inside the
// silhouette drawn over g.
func (s Shape) Covers(g Geometry, x, y float64) bool {
	if !g.Contains(x, y) {
		return false
	}
	left, top := float64(g.X), float64(g.Y)
	right, bottom := float64(g.Right()), float64(g.Bottom())

	corners := [4]struct {
		r      float64
		cx, cy float64
		inside bool
	}{
		{s.Radii.TopLeft, left + s.Radii.TopLeft, top + s.Radii.TopLeft, x < left+s.Radii.TopLeft && y < top+s.Radii.TopLeft},
		{s.Radii.TopRight, right - s.Radii.TopRight, top + s.Radii.TopRight, x > right-s.Radii.TopRight && y < top+s.Radii.TopRight},
		{s.Radii.BottomRight, right - s.Radii.BottomRight, bottom - s.Radii.BottomRight, x > right-s.Radii.BottomRight && y > bottom-s.Radii.BottomRight},
		{s.Radii.BottomLeft, left + s.Radii.BottomLeft, bottom - s.Radii.BottomLeft, x < left+s.Radii.BottomLeft && y > bottom-s.Radii.BottomLeft},
	}
	for _, c := range corners {
		if c.r <= 0 || !c.inside {
			continue
		}
		dx, dy := x-c.cx, y-c.cy
		return dx*dx+dy*dy <= c.r*c.r
	}
	return true
}
