// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"math"

	"github.com/gogpu/gridview"
)

// Default zoom steps for discrete zoom input (keys and wheel ticks).
const (
	DefaultZoomIn  = 1.1
	DefaultZoomOut = 0.9
)

// ScrollHandler receives scroll wheel input. deltaY is positive when the
// wheel is scrolled up (away from the user); at is the pointer position in
// screen space.
type ScrollHandler interface {
	OnScroll(deltaY float64, at gridview.Point)
}

// Option configures a Controller.
type Option func(*Controller)

// WithZoomStep sets the multipliers applied by one zoom-in and one zoom-out
// step. Non-finite or non-positive values are ignored.
func WithZoomStep(in, out float64) Option {
	return func(c *Controller) {
		if in > 0 && !math.IsInf(in, 0) {
			c.zoomIn = in
		}
		if out > 0 && !math.IsInf(out, 0) {
			c.zoomOut = out
		}
	}
}

// Controller feeds gestures into an Engine.
type Controller struct {
	engine *gridview.Engine

	zoomIn  float64
	zoomOut float64

	mouse       gridview.Point
	prevDrag    gridview.Size
	prevMagnify float64

	pinching  bool
	pinchDist float64
	pinchMid  gridview.Point
}

// NewController creates a Controller driving e.
func NewController(e *gridview.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine:      e,
		zoomIn:      DefaultZoomIn,
		zoomOut:     DefaultZoomOut,
		prevMagnify: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine returns the engine the controller drives.
func (c *Controller) Engine() *gridview.Engine { return c.engine }

// Mouse returns the last pointer position reported by MouseMoved.
func (c *Controller) Mouse() gridview.Point { return c.mouse }

// MouseMoved records the pointer position, used as the anchor for key and
// wheel zoom.
func (c *Controller) MouseMoved(p gridview.Point) {
	c.mouse = p
}

// DragChanged reports the total translation of an ongoing drag since it
// started. Only the change since the previous call is applied.
func (c *Controller) DragChanged(total gridview.Size) {
	c.engine.UpdateTranslation(total.Sub(c.prevDrag))
	c.prevDrag = total
}

// DragEnded finishes the current drag.
func (c *Controller) DragEnded() {
	c.prevDrag = gridview.Size{}
}

// MagnifyChanged reports the total magnification of an ongoing pinch since
// it started, anchored at the pinch start location. Only the change since
// the previous call is applied.
func (c *Controller) MagnifyChanged(magnification float64, start gridview.Point) {
	c.engine.UpdateScale(magnification/c.prevMagnify, start)
	c.prevMagnify = magnification
}

// MagnifyEnded finishes the current pinch.
func (c *Controller) MagnifyEnded() {
	c.prevMagnify = 1
}

// PinchChanged reports the current positions of two touch points. The
// first call starts a pinch; later calls magnify by the ratio of the
// current to the starting finger distance, anchored at the starting
// midpoint.
func (c *Controller) PinchChanged(a, b gridview.Point) {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	if !c.pinching {
		if d == 0 {
			return
		}
		c.pinching = true
		c.pinchDist = d
		c.pinchMid = a.Add(b).Div(2)
		return
	}
	c.MagnifyChanged(d/c.pinchDist, c.pinchMid)
}

// PinchEnded finishes the current two-finger pinch.
func (c *Controller) PinchEnded() {
	c.pinching = false
	c.MagnifyEnded()
}

// OnScroll implements ScrollHandler: scrolling up zooms in, down zooms out,
// one step per call regardless of the magnitude of deltaY.
func (c *Controller) OnScroll(deltaY float64, at gridview.Point) {
	c.mouse = at
	switch {
	case deltaY > 0:
		c.engine.UpdateScale(c.zoomIn, at)
	case deltaY < 0:
		c.engine.UpdateScale(c.zoomOut, at)
	}
}

// HandleKey applies one navigation key and reports whether it was handled.
// Arrow keys slide the grid by one rendered line gap, so the lines appear to
// step by exactly one cell.
func (c *Controller) HandleKey(k Key) bool {
	step := c.engine.RenderedSpacing()
	switch k {
	case KeyZoomIn:
		c.engine.UpdateScale(c.zoomIn, c.mouse)
	case KeyZoomOut:
		c.engine.UpdateScale(c.zoomOut, c.mouse)
	case KeyLeft:
		c.engine.UpdateTranslation(gridview.Sz(step, 0))
	case KeyRight:
		c.engine.UpdateTranslation(gridview.Sz(-step, 0))
	case KeyUp:
		c.engine.UpdateTranslation(gridview.Sz(0, step))
	case KeyDown:
		c.engine.UpdateTranslation(gridview.Sz(0, -step))
	default:
		return false
	}
	gridview.Logger().Debug("input: key", "key", k, "scale", c.engine.Scale())
	return true
}

var _ ScrollHandler = (*Controller)(nil)
