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
	"image"
	"math"

	"seehuhn.de/go/mapedit/layer"
)

// Stamp is a decorative image placed with its top-left corner at (X, Y).
// A nil Image is allowed and paints nothing.
type Stamp struct {
	ID            int
	Image         image.Image
	X, Y          float64
	Width, Height float64
}

func (s Stamp) RecordID() int { return s.ID }

// Rect returns the pixel rectangle covered by the stamp.
func (s Stamp) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(s.X)), int(math.Round(s.Y)),
		int(math.Round(s.X+s.Width)), int(math.Round(s.Y+s.Height)),
	)
}

// Contains reports whether (x, y) lies in the half-open box
// [X, X+Width) × [Y, Y+Height).
func (s Stamp) Contains(x, y float64) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// StampRenderer scales stamp images into their boxes.
type StampRenderer struct{}

// Render draws s onto dst.
func (StampRenderer) Render(dst *layer.Layer, s Stamp) {
	dst.DrawImage(s.Image, s.Rect())
}
