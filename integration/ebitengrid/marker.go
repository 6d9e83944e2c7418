// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/gridview"
)

// Marker is a filled circle pinned to a grid position, sized in screen
// units.
type Marker struct {
	Pos    gridview.Point
	Radius float64
	Color  color.Color
}

// Position implements gridview.Object.
func (m Marker) Position() gridview.Point { return m.Pos }

// DrawTo implements Object.
func (m Marker) DrawTo(dst *ebiten.Image, at gridview.Point) {
	col := m.Color
	if col == nil {
		col = color.RGBA{R: 0xd0, A: 0xff}
	}
	vector.DrawFilledCircle(dst, float32(at.X), float32(at.Y), float32(m.Radius), col, true)
}
