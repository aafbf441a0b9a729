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

// Package grid implements the tile grid geometry of a map: canvas size,
// grid lines and the nine guide points of every tile which pointer
// positions snap to.
package grid

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidGrid is returned by [New] for non-positive dimensions.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a rows × cols arrangement of square tiles.  The zero value is
// not usable; use [New].
type Grid struct {
	Rows, Cols int
	TileSize   float64
}

// New returns a grid with the given dimensions.
func New(rows, cols int, tileSize float64) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%d×%d tiles: %w", rows, cols, ErrInvalidGrid)
	}
	if !(tileSize > 0) || math.IsInf(tileSize, 0) {
		return Grid{}, fmt.Errorf("tile size %g: %w", tileSize, ErrInvalidGrid)
	}
	return Grid{Rows: rows, Cols: cols, TileSize: tileSize}, nil
}

// Width returns the canvas width in pixels.
func (g Grid) Width() int {
	return int(math.Ceil(float64(g.Cols) * g.TileSize))
}

// Height returns the canvas height in pixels.
func (g Grid) Height() int {
	return int(math.Ceil(float64(g.Rows) * g.TileSize))
}

// Bounds returns the canvas rectangle.
func (g Grid) Bounds() rect.Rect {
	return rect.Rect{URx: float64(g.Width()), URy: float64(g.Height())}
}

// Snap returns the guide point nearest to (x, y).  The second return value
// is false if no guide point is within snapDistance, or if the nearest one
// lies outside the canvas.
func (g Grid) Snap(x, y, snapDistance float64) (vec.Vec2, bool) {
	p, ok := NearestGuidePoint(x, y, g.TileSize, snapDistance)
	if !ok {
		return vec.Vec2{}, false
	}
	if p.X < 0 || p.Y < 0 || p.X > float64(g.Width()) || p.Y > float64(g.Height()) {
		return vec.Vec2{}, false
	}
	return p, true
}

// GuidePoints returns every guide point of the grid exactly once, row by
// row.
func (g Grid) GuidePoints() []vec.Vec2 {
	h := g.TileSize / 2
	nx, ny := 2*g.Cols+1, 2*g.Rows+1
	res := make([]vec.Vec2, 0, nx*ny)
	for j := range ny {
		for i := range nx {
			res = append(res, vec.Vec2{X: float64(i) * h, Y: float64(j) * h})
		}
	}
	return res
}

// Line is a grid line from A to B.
type Line struct {
	A, B vec.Vec2
}

// Lines returns the tile borders: Cols+1 vertical lines followed by Rows+1
// horizontal lines.
func (g Grid) Lines() []Line {
	w, h := float64(g.Width()), float64(g.Height())
	res := make([]Line, 0, g.Rows+g.Cols+2)
	for i := range g.Cols + 1 {
		x := float64(i) * g.TileSize
		res = append(res, Line{A: vec.Vec2{X: x}, B: vec.Vec2{X: x, Y: h}})
	}
	for j := range g.Rows + 1 {
		y := float64(j) * g.TileSize
		res = append(res, Line{A: vec.Vec2{Y: y}, B: vec.Vec2{X: w, Y: y}})
	}
	return res
}

// NearestGuidePoint returns the guide point closest to (x, y), considering
// the nearest tile intersection and the eight half-tile offsets around it.
// Candidates are tried in a fixed order, and on ties the earlier one wins.
// The second return value is false if the closest candidate is further
// than snapDistance away.
func NearestGuidePoint(x, y, tileSize, snapDistance float64) (vec.Vec2, bool) {
	if !(tileSize > 0) {
		return vec.Vec2{}, false
	}
	gx := math.Round(x/tileSize) * tileSize
	gy := math.Round(y/tileSize) * tileSize
	h := tileSize / 2

	candidates := [9]vec.Vec2{
		{X: gx, Y: gy},
		{X: gx + h, Y: gy},
		{X: gx - h, Y: gy},
		{X: gx, Y: gy + h},
		{X: gx, Y: gy - h},
		{X: gx + h, Y: gy + h},
		{X: gx - h, Y: gy + h},
		{X: gx + h, Y: gy - h},
		{X: gx - h, Y: gy - h},
	}

	p := vec.Vec2{X: x, Y: y}
	best := candidates[0]
	bestDist := best.Sub(p).Length()
	for _, c := range candidates[1:] {
		if d := c.Sub(p).Length(); d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > snapDistance {
		return vec.Vec2{}, false
	}
	return best, true
}
