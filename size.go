package gridview

// Size represents a 2D extent or displacement, such as a viewport size or a
// drag delta. Unlike Point which represents a position, Size carries width
// and height.
type Size struct {
	W, H float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Add returns the sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{W: s.W + o.W, H: s.H + o.H}
}

// Sub returns the difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{W: s.W - o.W, H: s.H - o.H}
}

// Mul returns the size scaled by a scalar.
func (s Size) Mul(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Div returns the size divided by a scalar.
func (s Size) Div(f float64) Size {
	return Size{W: s.W / f, H: s.H / f}
}

// MulPoint multiplies component-wise: width by p.X, height by p.Y.
func (s Size) MulPoint(p Point) Size {
	return Size{W: s.W * p.X, H: s.H * p.Y}
}

// Area returns W*H.
func (s Size) Area() float64 {
	return s.W * s.H
}

// IsFinite reports whether both dimensions are neither NaN nor infinite.
func (s Size) IsFinite() bool {
	return isFinite(s.W) && isFinite(s.H)
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// ToPoint converts the size to a Point.
// Useful when you need to treat a displacement as a position.
func (s Size) ToPoint() Point {
	return Point{X: s.W, Y: s.H}
}
