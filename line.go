package gridview

import "math"

// LineSegment is a straight line between two screen-space points.
type LineSegment struct {
	From, To Point
}

// Seg is a convenience function to create a LineSegment.
func Seg(x0, y0, x1, y1 float64) LineSegment {
	return LineSegment{From: Point{X: x0, Y: y0}, To: Point{X: x1, Y: y1}}
}

// IsVertical reports whether both endpoints share an X coordinate.
func (l LineSegment) IsVertical() bool {
	return l.From.X == l.To.X
}

// IsHorizontal reports whether both endpoints share a Y coordinate.
func (l LineSegment) IsHorizontal() bool {
	return l.From.Y == l.To.Y
}

// Bounds returns the axis-aligned bounding box of the segment.
func (l LineSegment) Bounds() Rect {
	return Rect{
		Min: Point{X: math.Min(l.From.X, l.To.X), Y: math.Min(l.From.Y, l.To.Y)},
		Max: Point{X: math.Max(l.From.X, l.To.X), Y: math.Max(l.From.Y, l.To.Y)},
	}
}

// Rect is an axis-aligned rectangle. Min is inclusive, as is Max.
type Rect struct {
	Min, Max Point
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Size{W: r.Max.X - r.Min.X, H: r.Max.Y - r.Min.Y}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether o lies entirely inside r, edges included.
func (r Rect) Contains(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y &&
		o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// BoundsOf returns the bounding box of all segments and false if segs is empty.
func BoundsOf(segs []LineSegment) (Rect, bool) {
	if len(segs) == 0 {
		return Rect{}, false
	}
	r := segs[0].Bounds()
	for _, s := range segs[1:] {
		r = r.Union(s.Bounds())
	}
	return r, true
}
