// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package draw

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gridview"
)

func newTestEngine(t *testing.T, w, h float64, opts ...gridview.Option) *gridview.Engine {
	t.Helper()
	e, err := gridview.New(opts...)
	if err != nil {
		t.Fatalf("gridview.New() error = %v", err)
	}
	e.SetViewportSize(gridview.Sz(w, h))
	return e
}

func isDark(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a > 0x8000 && r < 0x4000 && g < 0x4000 && b < 0x4000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func TestRenderSize(t *testing.T) {
	e := newTestEngine(t, 120.5, 80)
	dc, err := Render(e, DefaultStyle())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if dc.Width() != 121 || dc.Height() != 80 {
		t.Errorf("context size = %dx%d, want 121x80", dc.Width(), dc.Height())
	}
}

func TestRenderNoViewport(t *testing.T) {
	e, err := gridview.New()
	if err != nil {
		t.Fatalf("gridview.New() error = %v", err)
	}
	if _, err := Render(e, DefaultStyle()); !errors.Is(err, ErrNoViewport) {
		t.Errorf("Render() error = %v, want ErrNoViewport", err)
	}
}

func TestRenderStrokesLines(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	dc, err := Render(e, DefaultStyle())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := dc.Image()

	// Lines at x = 25 and y = 50, 2 units wide, centred on the line.
	if c := img.At(25, 10); !isDark(c) {
		t.Errorf("pixel on vertical line = %v, want dark", c)
	}
	if c := img.At(10, 50); !isDark(c) {
		t.Errorf("pixel on horizontal line = %v, want dark", c)
	}
	if c := img.At(12, 12); !isWhite(c) {
		t.Errorf("pixel between lines = %v, want white", c)
	}
}

func TestRenderFollowsTranslation(t *testing.T) {
	e := newTestEngine(t, 100, 100)
	e.UpdateTranslation(gridview.Sz(12, 0))
	dc, err := Render(e, DefaultStyle())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	img := dc.Image()

	if c := img.At(37, 10); !isDark(c) {
		t.Errorf("pixel on slid line = %v, want dark", c)
	}
	if c := img.At(25, 10); !isWhite(c) {
		t.Errorf("pixel where the line used to be = %v, want white", c)
	}
}

func TestRenderMarker(t *testing.T) {
	e := newTestEngine(t, 100, 100, gridview.WithScale(2))
	marker := Marker{Pos: gridview.Pt(6, 6), Radius: 5, Color: color.RGBA{R: 0xff, A: 0xff}}
	dc, err := Render(e, DefaultStyle(), marker)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// Grid (6, 6) projects to screen (12, 12).
	r, g, b, _ := dc.Image().At(12, 12).RGBA()
	if r < 0xf000 || g > 0x1000 || b > 0x1000 {
		t.Errorf("marker pixel = (%x, %x, %x), want red", r, g, b)
	}
}

func TestGridIntoCallerContext(t *testing.T) {
	e := newTestEngine(t, 50, 50)
	dc := gg.NewContext(50, 50)
	dc.ClearWithColor(gg.White)
	if err := Grid(dc, e, Style{LineWidth: 2}); err != nil {
		t.Fatalf("Grid() error = %v", err)
	}
	if c := dc.Image().At(25, 5); !isDark(c) {
		t.Errorf("pixel on line = %v, want dark with the default colour", c)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("png.Decode() error = %v", err)
	}
}
