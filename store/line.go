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

package store

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/mapedit/raster"
	"seehuhn.de/go/pdf/graphics"
)

// Line is a straight line segment drawn with the line tool.
type Line struct {
	ID     int
	X1, Y1 float64
	X2, Y2 float64
}

func (l Line) RecordID() int { return l.ID }

// Start returns the first end point.
func (l Line) Start() vec.Vec2 { return vec.Vec2{X: l.X1, Y: l.Y1} }

// End returns the second end point.
func (l Line) End() vec.Vec2 { return vec.Vec2{X: l.X2, Y: l.Y2} }

// Path returns the segment as a path.
func (l Line) Path() *path.Data {
	return (&path.Data{}).MoveTo(l.Start()).LineTo(l.End())
}

// LineRenderer strokes lines with a fixed pen.
type LineRenderer struct {
	Width float64
	Color color.NRGBA
	Cap   graphics.LineCapStyle

	r *raster.Rasteriser
}

// Render strokes l onto dst.
func (lr *LineRenderer) Render(dst *layer.Layer, l Line) {
	if lr.r == nil {
		lr.r = raster.NewRasteriser(dst.Clip())
	}
	lr.r.Reset(dst.Clip())
	lr.r.Width = lr.Width
	lr.r.Cap = lr.Cap
	dst.Stroke(lr.r, l.Path(), lr.Color, layer.Over)
}
