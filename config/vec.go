package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVec parses "x,y" as used by command-line flags.
func ParseVec(s string) (Vec, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vec{}, fmt.Errorf("config: point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vec{}, fmt.Errorf("config: point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vec{}, fmt.Errorf("config: point %q: %w", s, err)
	}
	return Vec{X: x, Y: y}, nil
}
