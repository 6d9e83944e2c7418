// Command gridpng renders a grid to a PNG file.
//
// Settings come from an optional YAML file and GRID_* environment
// variables (see package config); flags apply pan and zoom gestures on top,
// in the order pan then zoom.
//
//	gridpng -config grid.yaml -pan 40,-10 -zoom 2 -at 400,300 -marker 0,0 -output grid.png
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/config"
	"github.com/gogpu/gridview/draw"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		output     = flag.String("output", "grid.png", "output file")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		pan        = flag.String("pan", "", "screen-space drag `dx,dy` to apply")
		zoom       = flag.Float64("zoom", 1, "zoom multiplier to apply")
		at         = flag.String("at", "", "zoom anchor `x,y` (default: viewport centre)")
		verbose    = flag.Bool("v", false, "debug logging")
		markers    []config.Vec
	)
	flag.Func("marker", "grid-space `x,y` of a marker (repeatable)", func(s string) error {
		v, err := config.ParseVec(s)
		if err != nil {
			return err
		}
		markers = append(markers, v)
		return nil
	})
	flag.Parse()

	setupLogging(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("load config", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	e, err := cfg.NewEngine()
	if err != nil {
		fatal("create engine", err)
	}

	if *pan != "" {
		d, err := config.ParseVec(*pan)
		if err != nil {
			fatal("parse -pan", err)
		}
		e.UpdateTranslation(gridview.Sz(d.X, d.Y))
	}
	if *zoom != 1 {
		anchor := e.ViewportSize().ToPoint().Div(2)
		if *at != "" {
			v, err := config.ParseVec(*at)
			if err != nil {
				fatal("parse -at", err)
			}
			anchor = v.Point()
		}
		e.UpdateScale(*zoom, anchor)
	}

	style, err := cfg.Style()
	if err != nil {
		fatal("style", err)
	}
	objs := make([]draw.Drawable, 0, len(markers))
	for _, m := range markers {
		objs = append(objs, draw.Marker{Pos: m.Point(), Radius: 4})
	}

	dc, err := draw.Render(e, style, objs...)
	if err != nil {
		fatal("render", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		fatal("save", err)
	}

	s := e.State()
	slog.Info("grid saved", "output", *output,
		"width", cfg.Width, "height", cfg.Height,
		"scale", s.Scale, "translation", s.Translation)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	gridview.SetLogger(l)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
