// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package draw renders a gridview.Engine with the gg 2D graphics library.
//
// The data flow is:
//
//	Engine.GridLines() -> gg.Context paths -> Stroke -> image / PNG
//
// # Usage
//
//	dc, err := draw.Render(engine, draw.DefaultStyle(), objects...)
//	if err != nil {
//	    return err
//	}
//	return dc.SavePNG("grid.png")
//
// Grid and Objects can also draw into a caller-owned gg.Context, for
// example one backed by an integration canvas.
package draw
