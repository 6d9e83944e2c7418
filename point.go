package gridview

import "math"

// Point represents a 2D position in either grid space or screen space.
// Which space a Point lives in is determined by the API that returns it.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddSize offsets the point by a size, treating it as a displacement.
func (p Point) AddSize(s Size) Point {
	return Point{X: p.X + s.W, Y: p.Y + s.H}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// DivSize divides component-wise by a size. Dividing a screen position by
// the viewport size yields the fraction of the viewport the position lies at.
// The result is non-finite when either dimension of s is zero.
func (p Point) DivSize(s Size) Point {
	return Point{X: p.X / s.W, Y: p.Y / s.H}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
