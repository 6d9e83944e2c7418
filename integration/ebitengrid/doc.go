// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitengrid hosts a gridview.Engine in an ebiten window.
//
// Every tick the Game polls ebiten for pointer, wheel, touch and keyboard
// state and forwards it to an input.Controller. Every frame it strokes the
// engine's grid lines and draws overlay objects at their projected
// positions. The window size becomes the engine viewport.
//
//	  ebiten input ──► input.Controller ──► gridview.Engine
//	                                              │
//	  screen ◄── vector.StrokeLine ◄── GridLines ─┘
//
// # Usage
//
//	e, _ := gridview.New()
//	g := ebitengrid.New(e)
//	if err := ebitengrid.Run(g, "grid", 800, 600); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// ebiten calls Update, Draw and Layout from a single goroutine, which
// satisfies the engine's single-threaded contract. Do not touch the engine
// from other goroutines while the game runs.
package ebitengrid
