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

// Package testcases defines scripted editing sessions.  The sessions are
// replayed by the tests of the editor, and rendered to reference images
// by the genref command.
package testcases

import (
	"image"
	"image/color"
)

// Scenario is a scripted editing session on an empty map.
type Scenario struct {
	Name     string  // lowercase a-z and _ only
	Rows     int     // grid rows
	Cols     int     // grid columns
	TileSize float64 // tile size in pixels
	Steps    []Step
}

// Step is one user action.
type Step interface {
	isStep()
}

// Click is a pointer-down event.
type Click struct {
	X, Y   float64
	Mode   string // line | rect | circle | polygon | stamp
	Delete bool
}

// Move is a pointer-move event.
type Move struct {
	X, Y float64
	Mode string
}

// Undo reverts the last edit.
type Undo struct{}

// Redo repeats the last undone edit.
type Redo struct{}

// UseStamp selects the stamp image made by [StampImage] with the given
// seed.  A negative seed removes the stamp image.
type UseStamp struct {
	Seed int
}

func (Click) isStep()    {}
func (Move) isStep()     {}
func (Undo) isStep()     {}
func (Redo) isStep()     {}
func (UseStamp) isStep() {}

// StampImage returns a 16×16 test image: a filled diamond whose colour
// depends on seed.
func StampImage(seed int) image.Image {
	const size = 16
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := color.NRGBA{
		R: uint8(40 + 70*(seed%3)),
		G: uint8(40 + 50*(seed%4)),
		B: uint8(200 - 30*(seed%5)),
		A: 255,
	}
	for y := range size {
		for x := range size {
			dx, dy := 2*x+1-size, 2*y+1-size
			if abs(dx)+abs(dy) <= size {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rect returns the two clicks which draw a rectangle.
func rect(x1, y1, x2, y2 float64, del bool) []Step {
	return []Step{
		Click{X: x1, Y: y1, Mode: "rect", Delete: del},
		Click{X: x2, Y: y2, Mode: "rect", Delete: del},
	}
}

// circle returns the two clicks which draw a circle around (cx, cy).
func circle(cx, cy, px, py float64, del bool) []Step {
	return []Step{
		Click{X: cx, Y: cy, Mode: "circle", Delete: del},
		Click{X: px, Y: py, Mode: "circle", Delete: del},
	}
}

// line returns the two clicks which draw a line.
func line(x1, y1, x2, y2 float64) []Step {
	return []Step{
		Click{X: x1, Y: y1, Mode: "line"},
		Click{X: x2, Y: y2, Mode: "line"},
	}
}

// polygon returns the clicks for a closed polygon through the given
// points, given as x, y pairs.
func polygon(del bool, xy ...float64) []Step {
	var res []Step
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, Click{X: xy[i], Y: xy[i+1], Mode: "polygon", Delete: del})
	}
	return append(res, Click{X: xy[0], Y: xy[1], Mode: "polygon", Delete: del})
}

// join concatenates step lists.
func join(parts ...[]Step) []Step {
	var res []Step
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}
