// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/input"
)

func (g *Game) pollPointer() {
	x, y := ebiten.CursorPosition()
	cursor := gridview.Pt(float64(x), float64(y))
	g.ctrl.MouseMoved(cursor)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
		g.dragStart = cursor
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		d := cursor.Sub(g.dragStart)
		g.ctrl.DragChanged(gridview.Sz(d.X, d.Y))
	case g.dragging:
		g.dragging = false
		g.ctrl.DragEnded()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.ctrl.OnScroll(dy, cursor)
	}
}

func (g *Game) pollTouches() {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) < 2 {
		g.ctrl.PinchEnded()
		return
	}
	ax, ay := ebiten.TouchPosition(ids[0])
	bx, by := ebiten.TouchPosition(ids[1])
	g.ctrl.PinchChanged(gridview.Pt(float64(ax), float64(ay)), gridview.Pt(float64(bx), float64(by)))
}

var keyBindings = []struct {
	key ebiten.Key
	nav input.Key
}{
	{ebiten.KeyEqual, input.KeyZoomIn},
	{ebiten.KeyNumpadAdd, input.KeyZoomIn},
	{ebiten.KeyMinus, input.KeyZoomOut},
	{ebiten.KeyNumpadSubtract, input.KeyZoomOut},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
}

func (g *Game) pollKeys() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.ctrl.HandleKey(b.nav)
		}
	}
}
