// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gridview"
)

// Marker is a filled circle pinned to a grid position. Its radius is in
// screen units, so it does not grow when zooming in.
type Marker struct {
	Pos    gridview.Point
	Radius float64
	Color  color.Color
}

// Position implements gridview.Object.
func (m Marker) Position() gridview.Point { return m.Pos }

// Draw implements Drawable.
func (m Marker) Draw(dc *gg.Context, at gridview.Point) {
	col := m.Color
	if col == nil {
		col = color.RGBA{R: 0xd0, A: 0xff}
	}
	dc.SetColor(col)
	dc.DrawCircle(at.X, at.Y, m.Radius)
	if err := dc.Fill(); err != nil {
		gridview.Logger().Warn("draw: marker fill failed", "pos", m.Pos, "err", err)
	}
}
