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

package hittest

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/store"
)

func TestPointToSegmentDistance(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 10, Y: 0}
	cases := []struct {
		p    vec.Vec2
		want float64
	}{
		{vec.Vec2{X: 5, Y: 3}, 3},
		{vec.Vec2{X: -3, Y: 4}, 5},  // before a
		{vec.Vec2{X: 13, Y: -4}, 5}, // after b
		{vec.Vec2{X: 10, Y: 0}, 0},
	}
	for _, tc := range cases {
		if got := PointToSegmentDistance(tc.p, a, b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("distance from %v: got %g, want %g", tc.p, got, tc.want)
		}
	}

	// degenerate segment
	if got := PointToSegmentDistance(vec.Vec2{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment: got %g, want 5", got)
	}
}

func TestNearestLine(t *testing.T) {
	lines := []store.Line{
		{ID: 1, X1: 0, Y1: 0, X2: 140, Y2: 0},
		{ID: 2, X1: 0, Y1: 10, X2: 140, Y2: 10},
		{ID: 3, X1: 0, Y1: 0, X2: 140, Y2: 0}, // same as 1, but newer
	}

	if i, ok := NearestLine(lines, vec.Vec2{X: 70, Y: 2}, 8); !ok || lines[i].ID != 3 {
		t.Errorf("tie: got index %d, %t; want line 3", i, ok)
	}
	if i, ok := NearestLine(lines, vec.Vec2{X: 70, Y: 7}, 8); !ok || lines[i].ID != 2 {
		t.Errorf("nearest: got index %d, %t; want line 2", i, ok)
	}
	if _, ok := NearestLine(lines, vec.Vec2{X: 70, Y: 30}, 8); ok {
		t.Error("miss reported a match")
	}
	if _, ok := NearestLine(nil, vec.Vec2{}, 8); ok {
		t.Error("empty list reported a match")
	}
}

func TestTopmostStamp(t *testing.T) {
	stamps := []store.Stamp{
		{ID: 1, X: 0, Y: 0, Width: 70, Height: 70},
		{ID: 2, X: 35, Y: 35, Width: 70, Height: 70},
	}
	if i, ok := TopmostStamp(stamps, vec.Vec2{X: 35, Y: 35}); !ok || stamps[i].ID != 2 {
		t.Errorf("overlap: got %d, %t; want stamp 2", i, ok)
	}
	if i, ok := TopmostStamp(stamps, vec.Vec2{X: 0, Y: 0}); !ok || stamps[i].ID != 1 {
		t.Errorf("corner: got %d, %t; want stamp 1", i, ok)
	}
	if _, ok := TopmostStamp(stamps, vec.Vec2{X: 105, Y: 105}); ok {
		t.Error("point on the far edge matched")
	}
}
