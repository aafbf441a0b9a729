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

package layer

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Name identifies a layer of the stack.  The numeric order is the
// stacking order, from bottom to top.
type Name int

const (
	GridLines Name = iota
	Solid
	Guides
	Stamps
	Lines
	Border
	Preview

	numLayers
)

// Names lists all layers from bottom to top.
var Names = []Name{GridLines, Solid, Guides, Stamps, Lines, Border, Preview}

func (n Name) String() string {
	switch n {
	case GridLines:
		return "grid-lines"
	case Solid:
		return "solid"
	case Guides:
		return "guides"
	case Stamps:
		return "stamps"
	case Lines:
		return "lines"
	case Border:
		return "border"
	case Preview:
		return "preview"
	default:
		return fmt.Sprintf("layer(%d)", int(n))
	}
}

// Stack holds one layer per [Name], all of the same size.
type Stack struct {
	layers [numLayers]*Layer
}

// NewStack allocates a transparent stack of the given size.
func NewStack(width, height int) *Stack {
	s := &Stack{}
	for i := range s.layers {
		s.layers[i] = New(width, height)
	}
	return s
}

// Get returns the named layer.  It panics for unknown names.
func (s *Stack) Get(n Name) *Layer {
	if n < 0 || n >= numLayers {
		panic(fmt.Sprintf("layer: unknown layer %d", int(n)))
	}
	return s.layers[n]
}

// Bounds returns the common pixel rectangle of all layers.
func (s *Stack) Bounds() image.Rectangle {
	return s.layers[0].Bounds()
}

// Clear makes all layers transparent.
func (s *Stack) Clear() {
	for _, l := range s.layers {
		l.Clear()
	}
}

// Composite draws all layers over dst, bottom to top.
func (s *Stack) Composite(dst draw.Image) {
	for _, n := range Names {
		img := s.layers[n].Img
		draw.Draw(dst, img.Rect, img, img.Rect.Min, draw.Over)
	}
}
