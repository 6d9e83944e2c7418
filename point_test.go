package gridview

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"AddSize", p.AddSize(Sz(10, 20)), Pt(13, 24)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Div", p.Div(2), Pt(1.5, 2)},
		{"DivSize", p.DivSize(Sz(6, 16)), Pt(0.5, 0.25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// Compound addition must touch each axis with its own component.
func TestPointAddIsComponentWise(t *testing.T) {
	p := Pt(1, 2).Add(Pt(10, 20))
	if p.Y != 22 {
		t.Errorf("Add() y = %v, want 22", p.Y)
	}
	p = Pt(1, 2).AddSize(Sz(10, 20))
	if p.Y != 22 {
		t.Errorf("AddSize() y = %v, want 22", p.Y)
	}
}

func TestPointDivSizeByZero(t *testing.T) {
	if Pt(1, 1).DivSize(Size{}).IsFinite() {
		t.Error("dividing by a zero size should not be finite")
	}
	if !Pt(0, 0).DivSize(Sz(1, 1)).IsFinite() {
		t.Error("dividing by a unit size should be finite")
	}
}

func TestSizeArithmetic(t *testing.T) {
	s, o := Sz(6, 8), Sz(2, 4)
	tests := []struct {
		name string
		got  Size
		want Size
	}{
		{"Add", s.Add(o), Sz(8, 12)},
		{"Sub", s.Sub(o), Sz(4, 4)},
		{"Mul", s.Mul(0.5), Sz(3, 4)},
		{"Div", s.Div(2), Sz(3, 4)},
		{"MulPoint", s.MulPoint(Pt(0.5, 0.25)), Sz(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if s.Area() != 48 {
		t.Errorf("Area() = %v, want 48", s.Area())
	}
	if s.ToPoint() != Pt(6, 8) {
		t.Errorf("ToPoint() = %v, want (6, 8)", s.ToPoint())
	}
}

func TestIsFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"finite point", Pt(1, -1).IsFinite(), true},
		{"NaN point", Pt(nan, 0).IsFinite(), false},
		{"Inf point", Pt(0, -inf).IsFinite(), false},
		{"finite size", Sz(1e300, 0).IsFinite(), true},
		{"NaN size", Sz(0, nan).IsFinite(), false},
		{"Inf size", Sz(inf, 1).IsFinite(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	b := Rect{Min: Pt(5, -5), Max: Pt(20, 5)}
	if got, want := a.Union(b), (Rect{Min: Pt(0, -5), Max: Pt(20, 10)}); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if !a.Contains(Rect{Min: Pt(0, 0), Max: Pt(10, 10)}) {
		t.Error("a rect should contain itself")
	}
	if a.Contains(b) {
		t.Error("a should not contain b")
	}
	if got := b.Size(); got != Sz(15, 10) {
		t.Errorf("Size() = %v, want (15, 10)", got)
	}
}

func TestLineSegmentBounds(t *testing.T) {
	l := Seg(10, 5, 2, 8)
	if got, want := l.Bounds(), (Rect{Min: Pt(2, 5), Max: Pt(10, 8)}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if !Seg(3, 0, 3, 9).IsVertical() || Seg(3, 0, 3, 9).IsHorizontal() {
		t.Error("Seg(3, 0, 3, 9) should be vertical only")
	}
	if _, ok := BoundsOf(nil); ok {
		t.Error("BoundsOf(nil) ok = true, want false")
	}
}
