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
	"image/color"
	"log/slog"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/boundary"
	"seehuhn.de/go/mapedit/brush"
	"seehuhn.de/go/mapedit/history"
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/mapedit/store"
	"seehuhn.de/go/pdf/graphics"
)

// settle paints a completed shape into the solid layer, or cuts it out of
// the solid, line and stamp layers in delete mode, and records the edit.
func (e *Editor) settle(s brush.Shape, deleteMode bool) {
	solid := e.stack.Get(layer.Solid)
	before := solid.Snapshot()
	box := brush.PixelBox(s.Bounds(), e.cfg.Border.Pad, solid.Bounds())
	alphaBefore := solid.Alpha(box)

	op := layer.Set
	if deleteMode {
		op = layer.Punch
	}
	e.r.Reset(solid.Clip())
	solid.Fill(e.r, s.Path(), e.cfg.Solid.Color.NRGBA(), op)
	after := solid.Snapshot()
	changed := !before.Equal(after)

	var cut *store.Cut
	if deleteMode {
		lineLayer := e.stack.Get(layer.Lines)
		stampLayer := e.stack.Get(layer.Stamps)
		linesBefore := lineLayer.Snapshot()
		stampsBefore := stampLayer.Snapshot()

		c := store.Cut{ID: e.ids.next(kindCut), Path: s.Path()}
		e.lines.Cut(c)
		e.stamps.Cut(c)
		if linesBefore.Equal(lineLayer.Snapshot()) && stampsBefore.Equal(stampLayer.Snapshot()) {
			e.lines.Uncut(c.ID)
			e.stamps.Uncut(c.ID)
		} else {
			cut = &c
		}
	}

	if !changed && cut == nil {
		e.log().Debug("shape settled without effect", slog.Bool("delete", deleteMode))
		return
	}

	n := boundary.Recompute(solid, e.stack.Get(layer.Border), e.cfg.Border.Size, e.cfg.Border.Color.NRGBA())
	attrs := []any{
		slog.Bool("delete", deleteMode),
		slog.Any("box", box),
		slog.Int("boundary", n),
	}
	if deleteMode {
		edges := boundary.NewEdges(alphaBefore, solid.Alpha(box), box.Dx(), box.Dy())
		attrs = append(attrs, slog.Int("new_edges", len(edges)))
	}
	e.log().Debug("shape settled", attrs...)

	e.history.Push(history.Shape{Before: before, After: after, Cut: cut})
}

// target applies history commands to an editor.
type target struct {
	e *Editor
}

func (t *target) AppendLine(l store.Line)   { t.e.lines.Append(l) }
func (t *target) RemoveLine(id int)         { t.e.lines.Remove(id) }
func (t *target) AppendStamp(s store.Stamp) { t.e.stamps.Append(s) }
func (t *target) RemoveStamp(id int)        { t.e.stamps.Remove(id) }

func (t *target) RestoreSolid(s *layer.Snapshot) {
	cfg := t.e.cfg
	solid := t.e.stack.Get(layer.Solid)
	solid.Restore(s)
	boundary.Recompute(solid, t.e.stack.Get(layer.Border), cfg.Border.Size, cfg.Border.Color.NRGBA())
}

func (t *target) Cut(c store.Cut) {
	t.e.lines.Cut(c)
	t.e.stamps.Cut(c)
}

func (t *target) Uncut(id int) {
	t.e.lines.Uncut(id)
	t.e.stamps.Uncut(id)
}

// drawPreview redraws the preview layer for the pointer at (x, y): the
// highlighted guide point under the pointer and the outline of the
// pending stroke.
func (e *Editor) drawPreview(x, y float64) {
	dst := e.stack.Get(layer.Preview)
	dst.Clear()

	p, ok := e.grid.Snap(x, y, e.cfg.Snap.Distance)
	if ok {
		e.r.Reset(dst.Clip())
		dot := brush.Circle{Center: p, Radius: e.cfg.Guides.HoverRadius}
		dst.Fill(e.r, dot.Path(), e.cfg.Guides.Color.NRGBA(), layer.Over)
	} else {
		p = vec.Vec2{X: x, Y: y}
	}

	c := e.cfg.Preview.ValidColor.NRGBA()
	if !ok {
		c = e.cfg.Preview.InvalidColor.NRGBA()
	}

	switch e.mode {
	case ModeLine:
		if a, anchored := e.twoClick.Anchor(); anchored {
			e.strokePreview(brush.Outline([]vec.Vec2{a, p}, false), c)
		}
	case ModeRect:
		if a, anchored := e.twoClick.Anchor(); anchored {
			e.strokePreview(brush.NewRect(a, p).Path(), c)
		}
	case ModeCircle:
		if a, anchored := e.twoClick.Anchor(); anchored {
			e.strokePreview(brush.NewCircle(a, p).Path(), c)
		}
	case ModePolygon:
		if vv := e.polygon.Vertices(); len(vv) > 0 {
			e.strokePreview(brush.Outline(append(vv, p), false), c)
		}
	}
}

func (e *Editor) strokePreview(p *path.Data, c color.NRGBA) {
	dst := e.stack.Get(layer.Preview)
	e.r.Reset(dst.Clip())
	e.r.Width = e.cfg.Preview.Width
	e.r.Cap = graphics.LineCapRound
	e.r.Join = graphics.LineJoinRound
	dst.Stroke(e.r, p, c, layer.Over)
}
