// Package config loads grid settings for the gridview commands from a YAML
// file and GRID_* environment variables.
//
// Precedence, lowest to highest: Default, the YAML file, the environment.
// Command-line flags are applied on top by the commands themselves.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/draw"
	"github.com/gogpu/gridview/input"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GRID_"

// Vec is a point in YAML and environment form.
type Vec struct {
	X float64 `yaml:"x" env:"X"`
	Y float64 `yaml:"y" env:"Y"`
}

// Point converts v to a gridview.Point.
func (v Vec) Point() gridview.Point { return gridview.Pt(v.X, v.Y) }

// Config holds everything needed to build and display a grid.
type Config struct {
	// Engine construction.
	BaseScale        float64 `yaml:"base_scale" env:"BASE_SCALE"`
	MinLineGap       float64 `yaml:"min_line_gap" env:"MIN_LINE_GAP"`
	MaxLineGap       float64 `yaml:"max_line_gap" env:"MAX_LINE_GAP"`
	Scale            float64 `yaml:"scale" env:"SCALE"`
	Translation      Vec     `yaml:"translation" envPrefix:"TRANSLATION_"`
	InteractionPoint Vec     `yaml:"interaction_point" envPrefix:"INTERACTION_POINT_"`

	// Viewport, in pixels.
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`

	// Appearance.
	LineWidth  float64 `yaml:"line_width" env:"LINE_WIDTH"`
	LineColor  string  `yaml:"line_color" env:"LINE_COLOR"`
	Background string  `yaml:"background" env:"BACKGROUND"`

	// Discrete zoom steps for keys and the scroll wheel.
	ZoomIn  float64 `yaml:"zoom_in" env:"ZOOM_IN"`
	ZoomOut float64 `yaml:"zoom_out" env:"ZOOM_OUT"`
}

// Default returns the settings of a stock grid: 25pt black lines 2pt wide
// on white, gaps between 10 and 500 points, an 800x600 viewport.
func Default() *Config {
	return &Config{
		BaseScale:  1,
		MinLineGap: gridview.DefaultMinLineGap,
		MaxLineGap: gridview.DefaultMaxLineGap,
		Scale:      1,
		Width:      800,
		Height:     600,
		LineWidth:  2,
		LineColor:  "black",
		Background: "white",
		ZoomIn:     input.DefaultZoomIn,
		ZoomOut:    input.DefaultZoomOut,
	}
}

// Load reads defaults, then the YAML file at path if path is not empty,
// then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err := cfg.decodeYAML(f); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadYAML decodes a YAML document over the defaults. Keys missing from the
// document keep their default value.
func LoadYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decodeYAML(r); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decodeYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from GRID_* environment variables. Unset
// variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the settings the engine does not check itself.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalid, c.LineWidth)
	case c.ZoomIn <= 1:
		return fmt.Errorf("%w: zoom in step %v must be above 1", ErrInvalid, c.ZoomIn)
	case c.ZoomOut <= 0 || c.ZoomOut >= 1:
		return fmt.Errorf("%w: zoom out step %v must be between 0 and 1", ErrInvalid, c.ZoomOut)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// Options returns the engine options described by c.
func (c *Config) Options() []gridview.Option {
	return []gridview.Option{
		gridview.WithBaseScale(c.BaseScale),
		gridview.WithLineGapRange(c.MinLineGap, c.MaxLineGap),
		gridview.WithScale(c.Scale),
		gridview.WithTranslation(c.Translation.Point()),
		gridview.WithInteractionPoint(c.InteractionPoint.Point()),
	}
}

// NewEngine builds an engine from c with its viewport already set.
func (c *Config) NewEngine() (*gridview.Engine, error) {
	e, err := gridview.New(c.Options()...)
	if err != nil {
		return nil, err
	}
	e.SetViewportSize(c.Viewport())
	return e, nil
}

// Viewport returns the configured viewport size.
func (c *Config) Viewport() gridview.Size {
	return gridview.Sz(float64(c.Width), float64(c.Height))
}

// ControllerOptions returns the input options described by c.
func (c *Config) ControllerOptions() []input.Option {
	return []input.Option{input.WithZoomStep(c.ZoomIn, c.ZoomOut)}
}

// Style returns the line style described by c.
func (c *Config) Style() (draw.Style, error) {
	line, err := ParseColor(c.LineColor)
	if err != nil {
		return draw.Style{}, err
	}
	bg, err := ParseColor(c.Background)
	if err != nil {
		return draw.Style{}, err
	}
	return draw.Style{Color: line, LineWidth: c.LineWidth, Background: bg}, nil
}
