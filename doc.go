// Package gridview provides the transform engine behind an infinitely tiling
// line grid with pan and anchored zoom.
//
// # Overview
//
// An Engine keeps the grid's scale, translation, last zoom anchor and
// viewport size. Input collaborators feed it screen-space gesture deltas;
// rendering collaborators ask it for the line segments covering the
// viewport and for the screen position of objects placed on the grid.
//
// # Quick Start
//
//	import "github.com/gogpu/gridview"
//
//	e, err := gridview.New(gridview.WithLineGapRange(10, 500))
//	if err != nil {
//	    return err
//	}
//	e.SetViewportSize(gridview.Sz(800, 600))
//
//	// A drag of 12 pixels to the right
//	e.UpdateTranslation(gridview.Sz(12, 0))
//
//	// Zoom in 10% around the pointer
//	e.UpdateScale(1.1, gridview.Pt(400, 300))
//
//	for l := range e.GridLines() {
//	    dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
//	}
//
// # Coordinate System
//
// Screen space matches the usual computer graphics convention:
//   - Origin (0,0) at top-left of the viewport
//   - X increases right
//   - Y increases down
//
// Grid space is related to screen space by
//
//	screen = (grid + translation) * scale
//
// # Invalid Input
//
// Gesture input arrives once per frame and an error would have no remedy,
// so the mutators never fail. Non-finite deltas and multipliers, and
// degenerate viewport sizes, are ignored and leave the state unchanged.
// Zoom multipliers that would push the rendered line gap outside the
// configured range are clamped rather than rejected.
//
// # Sub-packages
//
//   - input: drag/magnify trackers, key bindings and scroll-to-zoom
//   - draw: strokes the grid and overlay objects with gogpu/gg
//   - config: YAML and environment configuration for the commands
//   - integration/ebitengrid: an interactive ebiten window
package gridview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
