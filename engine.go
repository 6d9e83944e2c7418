package gridview

import (
	"iter"
	"math"
)

// Engine owns the transform state of an infinitely tiling grid: scale,
// translation, the last zoom anchor and the viewport size. It converts
// gesture deltas into grid-space updates and produces the line segments to
// draw for the current viewport.
//
// A screen position is derived from a grid position as
//
//	screen = (grid + translation) * scale
//
// Engine is NOT safe for concurrent use. Confine all calls to the goroutine
// that processes input and redraws (the UI event loop).
type Engine struct {
	scale            float64
	translation      Point
	interactionPoint Point
	viewport         Size

	lineSpacing float64
	minLineGap  float64
	maxLineGap  float64

	observers []observer
	nextObsID int
}

// State is a snapshot of an Engine's transform state.
type State struct {
	Scale            float64
	Translation      Point
	InteractionPoint Point
	Viewport         Size
	LineSpacing      float64
	MinLineGap       float64
	MaxLineGap       float64
}

// New creates an Engine. An initial scale outside ScaleRange is clamped into
// it. The viewport is empty until SetViewportSize is called with a usable
// size; until then zooming is ignored and GridLines yields nothing.
//
// Returns an error wrapping ErrInvalidConfig if an option is out of range.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	lineSpacing := BaseLineSpacing * o.baseScale
	scale := math.Min(math.Max(o.scale, o.minLineGap/lineSpacing), o.maxLineGap/lineSpacing)
	if scale != o.scale {
		Logger().Debug("gridview: clamping initial scale to the line gap range",
			"scale", o.scale, "clamped", scale)
	}

	e := &Engine{
		scale:            scale,
		translation:      o.translation,
		interactionPoint: o.interactionPoint,
		lineSpacing:      lineSpacing,
		minLineGap:       o.minLineGap,
		maxLineGap:       o.maxLineGap,
	}
	Logger().Debug("gridview: engine created",
		"lineSpacing", e.lineSpacing, "scale", e.scale,
		"minLineGap", e.minLineGap, "maxLineGap", e.maxLineGap)
	return e, nil
}

// Scale returns the zoom factor applied to grid-space distances.
func (e *Engine) Scale() float64 { return e.scale }

// Translation returns the grid-space offset of the grid. This is how far the
// grid has been slid, not the position of a camera, so the values are the
// inverse of a camera position.
func (e *Engine) Translation() Point { return e.translation }

// InteractionPoint returns the screen-space anchor of the last zoom.
func (e *Engine) InteractionPoint() Point { return e.interactionPoint }

// ViewportSize returns the drawable area in screen units.
func (e *Engine) ViewportSize() Size { return e.viewport }

// LineSpacing returns the grid-space distance between adjacent lines.
func (e *Engine) LineSpacing() float64 { return e.lineSpacing }

// MinLineGap returns the smallest allowed rendered line gap.
func (e *Engine) MinLineGap() float64 { return e.minLineGap }

// MaxLineGap returns the largest allowed rendered line gap.
func (e *Engine) MaxLineGap() float64 { return e.maxLineGap }

// RenderedSpacing returns the current screen-space distance between lines.
func (e *Engine) RenderedSpacing() float64 { return e.lineSpacing * e.scale }

// ScaleRange returns the smallest and largest scale UpdateScale can reach.
func (e *Engine) ScaleRange() (minScale, maxScale float64) {
	return e.minLineGap / e.lineSpacing, e.maxLineGap / e.lineSpacing
}

// State returns a snapshot of the current transform state.
func (e *Engine) State() State {
	return State{
		Scale:            e.scale,
		Translation:      e.translation,
		InteractionPoint: e.interactionPoint,
		Viewport:         e.viewport,
		LineSpacing:      e.lineSpacing,
		MinLineGap:       e.minLineGap,
		MaxLineGap:       e.maxLineGap,
	}
}

// UpdateTranslation slides the grid by a screen-space delta. The delta is
// divided by the scale so the grid moves exactly delta pixels on screen
// regardless of zoom.
//
// A delta with a non-finite component is ignored entirely.
func (e *Engine) UpdateTranslation(delta Size) {
	if !delta.IsFinite() {
		Logger().Debug("gridview: ignoring non-finite translation delta", "delta", delta)
		return
	}
	e.translation = e.translation.AddSize(delta.Div(e.scale))
	e.notify()
}

// UpdateScale multiplies the scale by multiplier, keeping the grid point
// under the screen-space anchor (at) visually fixed.
//
// The multiplier is clamped so the rendered line gap stays within
// [MinLineGap, MaxLineGap]. A non-finite multiplier is ignored, as is any
// call made before a usable viewport size is known.
func (e *Engine) UpdateScale(multiplier float64, at Point) {
	if !isFinite(multiplier) {
		Logger().Debug("gridview: ignoring non-finite scale multiplier", "multiplier", multiplier)
		return
	}
	multiplier = e.clampMultiplier(multiplier)

	// 1. How far into the viewport the anchor lies, 0..1 per axis.
	// 2-4. How many grid units the visible extent grows or shrinks by.
	// 5. The share of that change lying before the anchor.
	// 6. Push it into the translation so the anchor does not move.
	fraction := at.DivSize(e.viewport)
	if !fraction.IsFinite() {
		Logger().Debug("gridview: ignoring zoom without a viewport", "at", at, "viewport", e.viewport)
		return
	}
	oldExtent := e.viewport.Div(e.scale)
	newExtent := e.viewport.Div(e.scale * multiplier)
	shift := newExtent.Sub(oldExtent).MulPoint(fraction)

	e.translation = e.translation.AddSize(shift)
	e.scale *= multiplier
	e.interactionPoint = at
	e.notify()
}

// clampMultiplier limits m so that lineSpacing*scale*m lies within the
// configured line gap range.
func (e *Engine) clampMultiplier(m float64) float64 {
	gap := e.scale * e.lineSpacing
	switch {
	case gap*m < e.minLineGap:
		return e.minLineGap / gap
	case gap*m > e.maxLineGap:
		return e.maxLineGap / gap
	}
	return m
}

// SetViewportSize sets the drawable area. The grid's origin is the upper
// left corner and it extends right and down.
//
// Sizes with a non-finite dimension or an area below 1 are ignored and the
// previous size is kept.
func (e *Engine) SetViewportSize(size Size) {
	if !size.IsFinite() || size.Area() < 1 {
		Logger().Debug("gridview: ignoring degenerate viewport", "size", size)
		return
	}
	if size == e.viewport {
		return
	}
	e.viewport = size
	e.notify()
}

// GridLines returns the line segments covering the viewport: full-height
// vertical lines first, left to right, then full-width horizontal lines,
// top to bottom.
//
// The sequence is lazy and may be ranged over any number of times; it
// reflects the state at the time GridLines was called. It is empty when the
// scale is not positive.
func (e *Engine) GridLines() iter.Seq[LineSegment] {
	scale, ls, t, vp := e.scale, e.lineSpacing, e.translation, e.viewport
	return func(yield func(LineSegment) bool) {
		if scale <= 0 {
			return
		}
		step := ls * scale
		if !(step > 0) || !isFinite(step) {
			return
		}

		x0 := wrap(t.X, ls) * scale
		for k := 0; ; k++ {
			x := x0 + float64(k)*step
			if x >= vp.W {
				break
			}
			if !yield(Seg(x, 0, x, vp.H)) {
				return
			}
		}

		y0 := wrap(t.Y, ls) * scale
		for k := 0; ; k++ {
			y := y0 + float64(k)*step
			if y >= vp.H {
				break
			}
			if !yield(Seg(0, y, vp.W, y)) {
				return
			}
		}
	}
}

// AppendGridLines appends the segments of GridLines to dst and returns the
// extended slice.
func (e *Engine) AppendGridLines(dst []LineSegment) []LineSegment {
	for l := range e.GridLines() {
		dst = append(dst, l)
	}
	return dst
}

// wrap returns v modulo spacing in [0, spacing), for either sign of v.
func wrap(v, spacing float64) float64 {
	r := v - math.Floor(v/spacing)*spacing
	// A tiny negative v rounds up to exactly spacing.
	if r >= spacing {
		r -= spacing
	}
	return r
}
