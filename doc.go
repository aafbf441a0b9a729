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

// Package mapedit implements the editing core of a tile map editor.
//
// An [Editor] owns a stack of raster layers the size of the map canvas.
// Pointer events, given in canvas pixel coordinates, snap to the guide
// points of the tile grid and drive one of the drawing tools: lines,
// rectangles, circles, polygons and stamps.  Shapes are painted into the
// solid layer, or cut out of it in delete mode, and the border layer is
// rebuilt from the solid layer after every such change.  Every completed
// edit can be undone and redone.
//
// The caller shows the map by compositing the layers, see
// [Editor.Composite].
package mapedit

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref
