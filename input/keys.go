// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

// Key is a grid navigation key.
type Key uint8

// Navigation keys understood by Controller.HandleKey.
const (
	// KeyUnknown is any key without a grid binding. HandleKey ignores it.
	KeyUnknown Key = iota

	// KeyZoomIn zooms in one step, anchored at the last pointer position.
	KeyZoomIn

	// KeyZoomOut zooms out one step, anchored at the last pointer position.
	KeyZoomOut

	// KeyLeft pans the view left by one rendered line gap.
	KeyLeft

	// KeyRight pans the view right by one rendered line gap.
	KeyRight

	// KeyUp pans the view up by one rendered line gap.
	KeyUp

	// KeyDown pans the view down by one rendered line gap.
	KeyDown
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyZoomIn:  "zoom-in",
	KeyZoomOut: "zoom-out",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyDown:    "down",
}

// String returns the key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// KeyForRune maps a typed character to a zoom key. Both the main keyboard
// "=" and the numpad "+" zoom in.
func KeyForRune(r rune) Key {
	switch r {
	case '=', '+':
		return KeyZoomIn
	case '-':
		return KeyZoomOut
	}
	return KeyUnknown
}
