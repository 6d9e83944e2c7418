// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/draw"
	"github.com/gogpu/gridview/input"
)

// Object is an overlay that can draw itself onto an ebiten image.
type Object interface {
	gridview.Object
	DrawTo(dst *ebiten.Image, at gridview.Point)
}

// Option configures a Game.
type Option func(*Game)

// WithStyle sets the line style. Only Color, LineWidth and Background are
// used.
func WithStyle(s draw.Style) Option {
	return func(g *Game) {
		g.style = s
	}
}

// WithObjects sets the overlay objects.
func WithObjects(objs ...Object) Option {
	return func(g *Game) {
		g.objects = objs
	}
}

// WithHUD toggles the status line in the top-left corner.
func WithHUD(on bool) Option {
	return func(g *Game) {
		g.hud = on
	}
}

// WithControllerOptions passes options to the underlying input.Controller.
func WithControllerOptions(opts ...input.Option) Option {
	return func(g *Game) {
		g.ctrlOpts = append(g.ctrlOpts, opts...)
	}
}

// Game implements ebiten.Game for a grid.
type Game struct {
	ctrl     *input.Controller
	ctrlOpts []input.Option
	style    draw.Style
	objects  []Object
	hud      bool
	printer  *message.Printer

	dragging  bool
	dragStart gridview.Point
	lines     int
}

// New creates a Game driving e.
func New(e *gridview.Engine, opts ...Option) *Game {
	g := &Game{
		style:   draw.DefaultStyle(),
		hud:     true,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.ctrl = input.NewController(e, g.ctrlOpts...)
	return g
}

// Controller returns the input controller fed by the game.
func (g *Game) Controller() *input.Controller { return g.ctrl }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.pollPointer()
	g.pollTouches()
	g.pollKeys()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.style.Background != nil {
		screen.Fill(g.style.Background)
	}

	col := g.style.Color
	if col == nil {
		col = color.Black
	}
	width := float32(g.style.LineWidth)

	n := 0
	for l := range g.ctrl.Engine().GridLines() {
		vector.StrokeLine(screen,
			float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
			width, col, false)
		n++
	}
	g.lines = n

	for o, at := range gridview.Placements(g.ctrl.Engine(), g.objects) {
		o.DrawTo(screen, at)
	}

	if g.hud {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

// Layout implements ebiten.Game. The window size becomes the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Engine().SetViewportSize(gridview.Sz(float64(outsideWidth), float64(outsideHeight)))
	return outsideWidth, outsideHeight
}

func (g *Game) status() string {
	e := g.ctrl.Engine()
	t := e.Translation()
	col, row := e.CellAt(g.ctrl.Mouse())
	return g.printer.Sprintf("scale %.3f  gap %.1fpx  lines %d\ntranslation %.1f, %.1f\ncell %d, %d",
		e.Scale(), e.RenderedSpacing(), g.lines, t.X, t.Y, col, row)
}

// Run opens a resizable window and runs g until it is closed.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	gridview.Logger().Info("ebitengrid: window opened", "title", title, "width", width, "height", height)
	return ebiten.RunGame(g)
}

var _ ebiten.Game = (*Game)(nil)
