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

package boundary

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/mapedit/layer"
)

var black = color.NRGBA{A: 255}

func TestRectanglePerimeter(t *testing.T) {
	l := layer.New(30, 20)
	filled := image.Rect(5, 4, 15, 12)
	l.FillRect(filled, black)

	pts := Extract(l.Img)

	got := make(map[image.Point]bool, len(pts))
	for _, p := range pts {
		got[p] = true
	}
	for y := range 20 {
		for x := range 30 {
			p := image.Point{X: x, Y: y}
			inside := p.In(filled)
			ring := inside && (x == filled.Min.X || x == filled.Max.X-1 ||
				y == filled.Min.Y || y == filled.Max.Y-1)
			if got[p] != ring {
				t.Errorf("pixel %v: boundary=%t, want %t", p, got[p], ring)
			}
		}
	}
	if want := 2*(10+8) - 4; len(pts) != want {
		t.Errorf("got %d boundary pixels, want %d", len(pts), want)
	}
}

func TestOuterMarginSkipped(t *testing.T) {
	l := layer.New(10, 10)
	l.FillRect(l.Bounds(), black)
	if pts := Extract(l.Img); len(pts) != 0 {
		t.Errorf("full layer has boundary %v", pts)
	}

	l.Clear()
	if pts := Extract(l.Img); len(pts) != 0 {
		t.Errorf("empty layer has boundary %v", pts)
	}
}

func TestHole(t *testing.T) {
	l := layer.New(10, 10)
	l.FillRect(l.Bounds(), black)
	l.FillRect(image.Rect(4, 4, 5, 5), color.NRGBA{})

	pts := Extract(l.Img)
	want := []image.Point{{X: 4, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 5}}
	if len(pts) != len(want) {
		t.Fatalf("got %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("got %v, want %v", pts, want)
			break
		}
	}
}

func TestNewEdges(t *testing.T) {
	const w, h = 6, 5
	before := make([]uint8, w*h)
	for i := range before {
		before[i] = 255
	}
	after := make([]uint8, w*h)
	copy(after, before)
	// erase columns 3 and 4 of the interior rows
	for y := 1; y < h-1; y++ {
		after[y*w+3] = 0
		after[y*w+4] = 0
	}

	pts := NewEdges(before, after, w, h)
	want := map[image.Point]bool{}
	for y := 1; y < h-1; y++ {
		want[image.Point{X: 3, Y: y}] = true
		want[image.Point{X: 4, Y: y}] = true
	}
	if len(pts) != len(want) {
		t.Fatalf("got %v", pts)
	}
	for _, p := range pts {
		if !want[p] {
			t.Errorf("unexpected edge pixel %v", p)
		}
	}

	if NewEdges(before, after[:3], w, h) != nil {
		t.Error("short snapshot accepted")
	}
}

func TestRecompute(t *testing.T) {
	solid := layer.New(20, 20)
	border := layer.New(20, 20)
	border.FillRect(image.Rect(0, 0, 2, 2), black) // stale marker

	solid.FillRect(image.Rect(5, 5, 10, 10), black)
	n := Recompute(solid, border, 3, black)
	if n != 16 {
		t.Errorf("got %d boundary pixels, want 16", n)
	}
	if border.Solid(0, 0) {
		t.Error("stale marker survived")
	}
	// markers extend size-1 pixels right and down from each boundary pixel
	if !border.Solid(11, 11) || border.Solid(12, 12) {
		t.Error("marker squares have the wrong extent")
	}
	if !border.IsClear(image.Rect(8, 8, 9, 9)) {
		t.Error("interior pixel marked")
	}
}
