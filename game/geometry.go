package game

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min  mgl64.Vec2
	W, H float64
}

func (r Rect) Max() mgl64.Vec2 {
	return mgl64.Vec2{r.Min.X() + r.W, r.Min.Y() + r.H}
}

// Circle is given by the top-left corner of its bounding box and its diameter.
type Circle struct {
	Min mgl64.Vec2
	D   float64
}

func (c Circle) Radius() float64 {
	return c.D / 2
}

func (c Circle) Center() mgl64.Vec2 {
	r := c.Radius()
	return c.Min.Add(mgl64.Vec2{r, r})
}

// CircleOverlapsRect clamps the circle center onto the rectangle and compares
// the remaining distance with the radius. Touching counts as overlap.
func CircleOverlapsRect(c Circle, r Rect) bool {
	center := c.Center()
	corner := r.Max()
	nearest := mgl64.Vec2{
		mgl64.Clamp(center.X(), r.Min.X(), corner.X()),
		mgl64.Clamp(center.Y(), r.Min.Y(), corner.Y()),
	}
	return nearest.Sub(center).Len() <= c.Radius()
}

func RectOverlapsCircle(r Rect, c Circle) bool {
	return CircleOverlapsRect(c, r)
}

// RectsOverlap is inclusive: rectangles sharing an edge overlap.
func RectsOverlap(a, b Rect) bool {
	amax, bmax := a.Max(), b.Max()
	return a.Min.X() <= bmax.X() && b.Min.X() <= amax.X() &&
		a.Min.Y() <= bmax.Y() && b.Min.Y() <= amax.Y()
}
