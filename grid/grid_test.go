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

package grid

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestNew(t *testing.T) {
	cases := []struct {
		rows, cols int
		tile       float64
		ok         bool
	}{
		{10, 10, 70, true},
		{1, 3, 0.5, true},
		{0, 10, 70, false},
		{10, -1, 70, false},
		{10, 10, 0, false},
		{10, 10, math.NaN(), false},
		{10, 10, math.Inf(1), false},
	}
	for _, tc := range cases {
		g, err := New(tc.rows, tc.cols, tc.tile)
		if tc.ok {
			if err != nil {
				t.Errorf("New(%d, %d, %g): %v", tc.rows, tc.cols, tc.tile, err)
			} else if g.Rows != tc.rows || g.Cols != tc.cols {
				t.Errorf("New(%d, %d, %g) = %+v", tc.rows, tc.cols, tc.tile, g)
			}
		} else if !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("New(%d, %d, %g): got %v, want ErrInvalidGrid", tc.rows, tc.cols, tc.tile, err)
		}
	}
}

func TestNearestGuidePoint(t *testing.T) {
	const tile, snap = 70, 12
	cases := []struct {
		x, y float64
		want vec.Vec2
		ok   bool
	}{
		{70, 70, vec.Vec2{X: 70, Y: 70}, true},
		{73, 68, vec.Vec2{X: 70, Y: 70}, true},
		{33, 2, vec.Vec2{X: 35, Y: 0}, true},
		{2, 104, vec.Vec2{X: 0, Y: 105}, true},
		{100, 40, vec.Vec2{X: 105, Y: 35}, true},
		{36, 36, vec.Vec2{X: 35, Y: 35}, true},
		{20, 20, vec.Vec2{}, false},
		{52, 0, vec.Vec2{}, false},
	}
	for _, tc := range cases {
		got, ok := NearestGuidePoint(tc.x, tc.y, tile, snap)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NearestGuidePoint(%g, %g) = %v, %t; want %v, %t",
				tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNearestGuidePointTieBreak(t *testing.T) {
	// (17.5, 0) is exactly between (0,0) and (35,0); the intersection is
	// tried first
	for range 10 {
		got, ok := NearestGuidePoint(17.5, 0, 70, 20)
		if !ok || got != (vec.Vec2{}) {
			t.Fatalf("got %v, %t; want (0,0)", got, ok)
		}
	}
}

func TestNearestGuidePointBoundary(t *testing.T) {
	// the snap distance itself is still accepted
	if _, ok := NearestGuidePoint(82, 70, 70, 12); !ok {
		t.Error("point at exactly snapDistance was rejected")
	}
	if _, ok := NearestGuidePoint(82.5, 70, 70, 12); ok {
		t.Error("point beyond snapDistance was accepted")
	}
}

func TestSnapRejectsOutside(t *testing.T) {
	g, err := New(2, 2, 70)
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := g.Snap(-3, 1, 12); !ok || p != (vec.Vec2{}) {
		t.Errorf("Snap(-3, 1) = %v, %t", p, ok)
	}
	if p, ok := g.Snap(150, 70, 12); !ok || p != (vec.Vec2{X: 140, Y: 70}) {
		t.Errorf("Snap(150, 70) = %v, %t", p, ok)
	}
	if _, ok := g.Snap(172, 70, 12); ok {
		t.Error("Snap accepted a guide point outside the canvas")
	}
}

func TestGuidePoints(t *testing.T) {
	g, err := New(3, 4, 70)
	if err != nil {
		t.Fatal(err)
	}
	pts := g.GuidePoints()
	if want := (2*4 + 1) * (2*3 + 1); len(pts) != want {
		t.Fatalf("got %d guide points, want %d", len(pts), want)
	}
	seen := make(map[vec.Vec2]bool)
	for _, p := range pts {
		if seen[p] {
			t.Errorf("guide point %v listed twice", p)
		}
		seen[p] = true
		if q, ok := g.Snap(p.X, p.Y, 1); !ok || q != p {
			t.Errorf("guide point %v snaps to %v, %t", p, q, ok)
		}
	}
}

func TestLines(t *testing.T) {
	g, err := New(3, 4, 70)
	if err != nil {
		t.Fatal(err)
	}
	lines := g.Lines()
	if len(lines) != 5+4 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if last := lines[len(lines)-1]; last.A.Y != 210 || last.B.X != 280 {
		t.Errorf("bottom line = %v", last)
	}
	if g.Width() != 280 || g.Height() != 210 {
		t.Errorf("canvas %d×%d, want 280×210", g.Width(), g.Height())
	}
}
