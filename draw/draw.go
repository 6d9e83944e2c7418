// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gridview"
)

// ErrNoViewport is returned by Render when the engine has no usable
// viewport size yet.
var ErrNoViewport = errors.New("draw: engine viewport not set")

// Style controls how grid lines are stroked.
type Style struct {
	// Color of the grid lines.
	Color color.Color

	// LineWidth is the stroke width in screen units.
	LineWidth float64

	// Background fills the canvas before drawing. Nil leaves it transparent.
	Background color.Color
}

// DefaultStyle returns black 2pt lines on white.
func DefaultStyle() Style {
	return Style{
		Color:      color.Black,
		LineWidth:  2,
		Background: color.White,
	}
}

// Drawable is an Object that can draw itself at a screen position.
type Drawable interface {
	gridview.Object
	Draw(dc *gg.Context, at gridview.Point)
}

// Grid strokes every grid line of e into dc.
func Grid(dc *gg.Context, e *gridview.Engine, s Style) error {
	col := s.Color
	if col == nil {
		col = color.Black
	}
	dc.SetColor(col)
	dc.SetLineWidth(s.LineWidth)

	n := 0
	for l := range e.GridLines() {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
		n++
	}
	if n == 0 {
		return nil
	}
	if err := dc.Stroke(); err != nil {
		gridview.Logger().Warn("draw: grid stroke failed", "lines", n, "err", err)
		return fmt.Errorf("draw: stroke grid: %w", err)
	}
	return nil
}

// Objects draws every object at its projected screen position. Objects
// whose position falls outside the canvas are still asked to draw, since
// they may extend into view.
func Objects(dc *gg.Context, e *gridview.Engine, objs []Drawable) {
	for o, at := range gridview.Placements(e, objs) {
		o.Draw(dc, at)
	}
}

// Render creates a context the size of the engine viewport, fills the
// background and draws the grid followed by the objects.
func Render(e *gridview.Engine, s Style, objs ...Drawable) (*gg.Context, error) {
	vp := e.ViewportSize()
	if vp.Area() < 1 {
		return nil, ErrNoViewport
	}

	dc := gg.NewContext(int(math.Ceil(vp.W)), int(math.Ceil(vp.H)))
	if s.Background != nil {
		dc.ClearWithColor(gg.FromColor(s.Background))
	}
	if err := Grid(dc, e, s); err != nil {
		return nil, err
	}
	Objects(dc, e, objs)
	return dc, nil
}
