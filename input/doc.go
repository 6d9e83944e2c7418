// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input turns raw gestures into gridview.Engine updates.
//
// Hosts report what their platform gives them: cumulative drag and
// magnify gestures, pointer movement, scroll wheel ticks and key presses.
// Controller converts them into per-frame translation deltas and zoom
// multipliers. Nothing here depends on a particular windowing toolkit; see
// integration/ebitengrid for a host that wires ebiten events to a
// Controller.
//
// # Key Bindings
//
//	=, +        zoom in around the pointer
//	-           zoom out around the pointer
//	arrows      slide the grid by one rendered line gap
//
// Like Engine, Controller is NOT safe for concurrent use.
package input
