// Command gridview opens an interactive grid window.
//
// Drag to pan, scroll or pinch to zoom, "=" / "-" to zoom around the
// pointer and the arrow keys to step one line at a time.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/config"
	"github.com/gogpu/gridview/integration/ebitengrid"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		title      = flag.String("title", "gridview", "window title")
		hud        = flag.Bool("hud", true, "show the status line")
		verbose    = flag.Bool("v", false, "debug logging")
		markers    []ebitengrid.Object
	)
	flag.Func("marker", "grid-space `x,y` of a marker (repeatable)", func(s string) error {
		v, err := config.ParseVec(s)
		if err != nil {
			return err
		}
		markers = append(markers, ebitengrid.Marker{Pos: v.Point(), Radius: 6})
		return nil
	})
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	gridview.SetLogger(l)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	e, err := cfg.NewEngine()
	if err != nil {
		slog.Error("create engine", "err", err)
		os.Exit(1)
	}
	style, err := cfg.Style()
	if err != nil {
		slog.Error("style", "err", err)
		os.Exit(1)
	}

	g := ebitengrid.New(e,
		ebitengrid.WithStyle(style),
		ebitengrid.WithObjects(markers...),
		ebitengrid.WithHUD(*hud),
		ebitengrid.WithControllerOptions(cfg.ControllerOptions()...),
	)
	if err := ebitengrid.Run(g, *title, cfg.Width, cfg.Height); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
