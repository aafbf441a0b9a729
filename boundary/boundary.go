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

// Package boundary finds the pixels where solid map area meets empty area,
// and paints markers for them onto the border layer.
//
// A pixel is solid iff its alpha value is non-zero.  Only 4-neighbours are
// considered.  The outermost rows and columns of a scanned region are
// never reported; callers pad bounded regions so that no true boundary
// pixel lies on the margin.
package boundary

import (
	"image"
	"image/color"

	"seehuhn.de/go/mapedit/layer"
)

// Extract returns the solid pixels of img which have at least one clear
// 4-neighbour, in row-major order.
func Extract(img *image.NRGBA) []image.Point {
	b := img.Rect
	solid := func(x, y int) bool {
		return img.Pix[img.PixOffset(x, y)+3] != 0
	}

	var res []image.Point
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			if !solid(x, y) {
				continue
			}
			if !solid(x-1, y) || !solid(x+1, y) || !solid(x, y-1) || !solid(x, y+1) {
				res = append(res, image.Point{X: x, Y: y})
			}
		}
	}
	return res
}

// NewEdges compares two alpha snapshots of the same w×h region and returns
// the pixels which went from solid to clear while still touching a solid
// 4-neighbour.  Coordinates are relative to the region.
func NewEdges(before, after []uint8, w, h int) []image.Point {
	if len(before) < w*h || len(after) < w*h {
		return nil
	}
	var res []image.Point
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			if before[i] == 0 || after[i] != 0 {
				continue
			}
			if after[i-1] != 0 || after[i+1] != 0 || after[i-w] != 0 || after[i+w] != 0 {
				res = append(res, image.Point{X: x, Y: y})
			}
		}
	}
	return res
}

// Render paints a size×size square with its top-left corner at every
// point.
func Render(dst *layer.Layer, pts []image.Point, size int, c color.NRGBA) {
	for _, p := range pts {
		dst.FillRect(image.Rect(p.X, p.Y, p.X+size, p.Y+size), c)
	}
}

// Recompute replaces the content of border by the markers for the current
// boundary of solid.  It returns the number of boundary pixels.
func Recompute(solid, border *layer.Layer, size int, c color.NRGBA) int {
	pts := Extract(solid.Img)
	border.Clear()
	Render(border, pts, size, c)
	return len(pts)
}
