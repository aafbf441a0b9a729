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

// Package brush holds the shapes which can be painted onto the solid layer,
// and the click state machines which collect their corner points.
package brush

import (
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is a closed area in canvas coordinates.  The implementations are
// [Rect], [Circle] and [Polygon].
type Shape interface {
	// Path returns the outline of the shape.
	Path() *path.Data

	// Bounds returns the bounding box of the shape.
	Bounds() rect.Rect

	isShape()
}

// Rect is an axis-aligned rectangle with Min <= Max componentwise.
type Rect struct {
	Min, Max vec.Vec2
}

// NewRect returns the rectangle spanned by two opposite corners.
func NewRect(a, b vec.Vec2) Rect {
	return Rect{
		Min: vec.Vec2{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: vec.Vec2{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func (Rect) isShape() {}

func (r Rect) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(r.Min).
		LineTo(vec.Vec2{X: r.Max.X, Y: r.Min.Y}).
		LineTo(r.Max).
		LineTo(vec.Vec2{X: r.Min.X, Y: r.Max.Y}).
		Close()
}

func (r Rect) Bounds() rect.Rect {
	return rect.Rect{LLx: r.Min.X, LLy: r.Min.Y, URx: r.Max.X, URy: r.Max.Y}
}

// Circle is a disc.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// NewCircle returns the circle around center which passes through p.
func NewCircle(center, p vec.Vec2) Circle {
	return Circle{Center: center, Radius: p.Sub(center).Length()}
}

func (Circle) isShape() {}

// kappa places the control points of a quarter circle Bézier arc.
const kappa = 0.5522847498

func (c Circle) Path() *path.Data {
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	k := kappa * r
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

func (c Circle) Bounds() rect.Rect {
	return rect.Rect{
		LLx: c.Center.X - c.Radius, LLy: c.Center.Y - c.Radius,
		URx: c.Center.X + c.Radius, URy: c.Center.Y + c.Radius,
	}
}

// Polygon is a closed polygon.  Self-intersecting polygons are filled
// with the nonzero winding rule.
type Polygon struct {
	Vertices []vec.Vec2
}

func (Polygon) isShape() {}

func (p Polygon) Path() *path.Data {
	return Outline(p.Vertices, true)
}

func (p Polygon) Bounds() rect.Rect {
	if len(p.Vertices) == 0 {
		return rect.Rect{}
	}
	v := p.Vertices[0]
	b := rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
	for _, v := range p.Vertices[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// Outline returns the polyline through pts, optionally closed.
func Outline(pts []vec.Vec2, closed bool) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, v := range pts[1:] {
		p.LineTo(v)
	}
	if closed {
		p.Close()
	}
	return p
}

// PixelBox returns the pixel rectangle covering b, grown by pad pixels on
// every side and clipped to limit.
func PixelBox(b rect.Rect, pad int, limit image.Rectangle) image.Rectangle {
	r := image.Rect(
		int(math.Floor(b.LLx))-pad, int(math.Floor(b.LLy))-pad,
		int(math.Ceil(b.URx))+pad, int(math.Ceil(b.URy))+pad,
	)
	return r.Intersect(limit)
}
