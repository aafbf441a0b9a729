// seehuhn.de/go/mapedit - a tile map editing core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mapedit

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/brush"
	"seehuhn.de/go/mapedit/config"
	"seehuhn.de/go/mapedit/grid"
	"seehuhn.de/go/mapedit/history"
	"seehuhn.de/go/mapedit/hittest"
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/mapedit/raster"
	"seehuhn.de/go/mapedit/store"
	"seehuhn.de/go/pdf/graphics"
)

// Mode selects the drawing tool.
type Mode int

const (
	ModeLine Mode = iota
	ModeRect
	ModeCircle
	ModePolygon
	ModeStamp
)

var modeNames = map[Mode]string{
	ModeLine:    "line",
	ModeRect:    "rect",
	ModeCircle:  "circle",
	ModePolygon: "polygon",
	ModeStamp:   "stamp",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a tool name, as returned by [Mode.String], to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// kind selects one of the id counters.
type kind int

const (
	kindLine kind = iota
	kindStamp
	kindCut

	numKinds
)

// idGenerator hands out object ids.  Every kind has its own counter, and
// ids are never reused within a session.
type idGenerator struct {
	last [numKinds]int
}

func (g *idGenerator) next(k kind) int {
	g.last[k]++
	return g.last[k]
}

// Editor is the editing state of one map.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	cfg  *config.Config
	grid grid.Grid

	stack   *layer.Stack
	r       *raster.Rasteriser
	lines   *store.Store[store.Line]
	stamps  *store.Store[store.Stamp]
	history *history.Manager

	ids     idGenerator
	session uuid.UUID

	mode     Mode
	twoClick brush.TwoClick
	polygon  brush.PolygonTool
	stamp    image.Image
}

// New creates an editor with an empty map.  A nil cfg selects
// [config.Default].
func New(cfg *config.Config) (*Editor, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.TileSize)
	if err != nil {
		return nil, fmt.Errorf("mapedit: %w", err)
	}
	lineCap, err := config.ParseCap(cfg.Line.Cap)
	if err != nil {
		return nil, fmt.Errorf("mapedit: %w", err)
	}

	stack := layer.NewStack(g.Width(), g.Height())
	e := &Editor{
		cfg:     cfg,
		grid:    g,
		stack:   stack,
		r:       raster.NewRasteriser(stack.Get(layer.Solid).Clip()),
		session: uuid.New(),
	}
	e.lines = store.New[store.Line](stack.Get(layer.Lines), &store.LineRenderer{
		Width: cfg.Line.Width,
		Color: cfg.Line.Color.NRGBA(),
		Cap:   lineCap,
	})
	e.stamps = store.New[store.Stamp](stack.Get(layer.Stamps), store.StampRenderer{})
	e.history = history.NewManager(&target{e: e})

	e.drawGridLines()
	e.drawGuides()

	e.log().Debug("editor created",
		slog.Int("rows", g.Rows),
		slog.Int("cols", g.Cols),
		slog.Float64("tile", g.TileSize))
	return e, nil
}

func (e *Editor) log() *slog.Logger {
	return Logger().With(slog.String("session", e.session.String()))
}

// Grid returns the tile grid.
func (e *Editor) Grid() grid.Grid {
	return e.grid
}

// Session returns the id of the current editing session.  A new id is
// assigned by [Editor.Reset].
func (e *Editor) Session() uuid.UUID {
	return e.session
}

// Mode returns the current tool.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Phase returns the state of the pending stroke of the current tool.
func (e *Editor) Phase() brush.Phase {
	switch e.mode {
	case ModeLine, ModeRect, ModeCircle:
		return e.twoClick.Phase()
	case ModePolygon:
		return e.polygon.Phase()
	default:
		return brush.Idle
	}
}

// SetMode switches to another tool.  Switching discards a pending stroke
// and clears the preview.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	if e.Phase() != brush.Idle {
		e.log().Debug("pending stroke discarded", slog.String("mode", e.mode.String()))
	}
	e.twoClick.Reset()
	e.polygon.Reset()
	e.stack.Get(layer.Preview).Clear()
	e.mode = m
}

// SetStamp sets the image used for new stamps.  nil means that no image is
// available; stamp placement is then ignored.
func (e *Editor) SetStamp(img image.Image) {
	e.stamp = img
}

// Layer returns the named layer for display.  The image must not be
// modified.
func (e *Editor) Layer(n layer.Name) image.Image {
	return e.stack.Get(n).Img
}

// Lines returns the lines, oldest first.
func (e *Editor) Lines() []store.Line {
	return e.lines.Items()
}

// Stamps returns the stamps, oldest first.
func (e *Editor) Stamps() []store.Stamp {
	return e.stamps.Items()
}

// Composite draws all layers over dst, in stacking order.
func (e *Editor) Composite(dst draw.Image) {
	e.stack.Composite(dst)
}

// CanUndo reports whether there is an edit to undo.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether there is an edit to redo.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo reverts the most recent edit.  It returns false if there is none.
func (e *Editor) Undo() bool {
	ok := e.history.Undo()
	e.log().Debug("undo", slog.Bool("ok", ok))
	return ok
}

// Redo repeats the most recently undone edit.  It returns false if there
// is none.
func (e *Editor) Redo() bool {
	ok := e.history.Redo()
	e.log().Debug("redo", slog.Bool("ok", ok))
	return ok
}

// Reset empties the map and starts a new session.  Pending strokes, the
// undo history and all objects are dropped, and ids start again from one.
func (e *Editor) Reset() {
	e.twoClick.Reset()
	e.polygon.Reset()
	e.history.Clear()
	e.lines.Clear()
	e.stamps.Clear()
	for _, n := range []layer.Name{layer.Solid, layer.Border, layer.Preview} {
		e.stack.Get(n).Clear()
	}
	e.ids = idGenerator{}
	e.session = uuid.New()
	e.log().Debug("session reset")
}

// OnPointerDown handles a click at canvas position (x, y) with the given
// tool.  In delete mode, shapes cut their area out of the map, and the
// line and stamp tools delete the object under the pointer.
func (e *Editor) OnPointerDown(x, y float64, mode Mode, deleteMode bool) {
	e.SetMode(mode)
	p, ok := e.grid.Snap(x, y, e.cfg.Snap.Distance)

	switch mode {
	case ModeLine:
		if deleteMode {
			e.deleteLine(vec.Vec2{X: x, Y: y})
			break
		}
		if a, b, done := e.twoClick.Click(p, ok); done {
			l := store.Line{ID: e.ids.next(kindLine), X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
			e.history.Execute(history.DrawLine{Line: l})
			e.log().Debug("line drawn", slog.Int("id", l.ID))
		}
	case ModeRect:
		if a, b, done := e.twoClick.Click(p, ok); done {
			e.settle(brush.NewRect(a, b), deleteMode)
		}
	case ModeCircle:
		if a, b, done := e.twoClick.Click(p, ok); done {
			e.settle(brush.NewCircle(a, b), deleteMode)
		}
	case ModePolygon:
		if poly, done := e.polygon.Click(p, ok); done {
			e.settle(poly, deleteMode)
		}
	case ModeStamp:
		if !ok {
			break
		}
		if deleteMode {
			e.deleteStamp(p)
		} else {
			e.placeStamp(p)
		}
	}

	e.drawPreview(x, y)
}

// OnPointerMove updates the preview for the pointer at (x, y).  Only the
// preview layer is changed.
func (e *Editor) OnPointerMove(x, y float64, mode Mode) {
	e.SetMode(mode)
	e.drawPreview(x, y)
}

func (e *Editor) deleteLine(p vec.Vec2) {
	lines := e.lines.Items()
	i, ok := hittest.NearestLine(lines, p, e.cfg.Snap.HitTolerance)
	if !ok {
		return
	}
	e.history.Execute(history.DeleteLine{Line: lines[i]})
	e.log().Debug("line deleted", slog.Int("id", lines[i].ID))
}

func (e *Editor) deleteStamp(p vec.Vec2) {
	stamps := e.stamps.Items()
	i, ok := hittest.TopmostStamp(stamps, p)
	if !ok {
		return
	}
	e.history.Execute(history.DeleteStamp{Stamp: stamps[i]})
	e.log().Debug("stamp deleted", slog.Int("id", stamps[i].ID))
}

func (e *Editor) placeStamp(p vec.Vec2) {
	if e.stamp == nil {
		e.log().Debug("stamp ignored: no image")
		return
	}
	s := store.Stamp{
		Image:  e.stamp,
		X:      p.X,
		Y:      p.Y,
		Width:  e.cfg.Stamp.Width,
		Height: e.cfg.Stamp.Height,
	}
	dst := e.stack.Get(layer.Stamps)
	if !s.Rect().In(dst.Bounds()) {
		e.log().Debug("stamp rejected: outside the map", slog.Any("rect", s.Rect()))
		return
	}
	if e.cfg.Stamp.RequireClear && !dst.IsClear(s.Rect()) {
		e.log().Debug("stamp rejected: area not clear", slog.Any("rect", s.Rect()))
		return
	}
	s.ID = e.ids.next(kindStamp)
	e.history.Execute(history.DrawStamp{Stamp: s})
	e.log().Debug("stamp placed", slog.Int("id", s.ID))
}

// drawGridLines paints the tile borders.
func (e *Editor) drawGridLines() {
	dst := e.stack.Get(layer.GridLines)
	e.r.Reset(dst.Clip())
	e.r.Width = e.cfg.Grid.Width
	e.r.Cap = graphics.LineCapSquare
	c := e.cfg.Grid.Color.NRGBA()
	for _, l := range e.grid.Lines() {
		dst.Stroke(e.r, brush.Outline([]vec.Vec2{l.A, l.B}, false), c, layer.Over)
	}
}

// drawGuides paints a dot at every guide point.
func (e *Editor) drawGuides() {
	dst := e.stack.Get(layer.Guides)
	e.r.Reset(dst.Clip())
	c := e.cfg.Guides.Color.NRGBA()
	for _, p := range e.grid.GuidePoints() {
		dot := brush.Circle{Center: p, Radius: e.cfg.Guides.Radius}
		dst.Fill(e.r, dot.Path(), c, layer.Over)
	}
}
