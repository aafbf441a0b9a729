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
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/brush"
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/pdf/graphics"
)

// box is a test record which paints an opaque rectangle.
type box struct {
	id int
	r  image.Rectangle
	c  color.NRGBA
}

func (b box) RecordID() int { return b.id }

type boxRenderer struct{ calls int }

func (br *boxRenderer) Render(dst *layer.Layer, b box) {
	br.calls++
	dst.FillRect(b.r, b.c)
}

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func cutRect(id int, x0, y0, x1, y1 float64) Cut {
	r := brush.NewRect(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1})
	return Cut{ID: id, Path: r.Path()}
}

func TestAppendPaintsIncrementally(t *testing.T) {
	l := layer.New(20, 20)
	br := &boxRenderer{}
	s := New[box](l, br)

	s.Append(box{1, image.Rect(0, 0, 10, 10), red})
	s.Append(box{2, image.Rect(5, 5, 15, 15), blue})
	if br.calls != 2 {
		t.Errorf("%d render calls, want 2", br.calls)
	}
	if c := l.Img.NRGBAAt(7, 7); c != blue {
		t.Errorf("overlap pixel %v, want blue", c)
	}

	s.Append(box{2, image.Rect(0, 0, 1, 1), red})
	if s.Len() != 2 || br.calls != 2 {
		t.Error("duplicate id was appended")
	}
}

func TestRemoveAndReappendKeepsOrder(t *testing.T) {
	l := layer.New(20, 20)
	s := New[box](l, &boxRenderer{})
	a := box{1, image.Rect(0, 0, 10, 10), red}
	b := box{2, image.Rect(5, 5, 15, 15), blue}
	s.Append(a)
	s.Append(b)
	want := l.Snapshot()

	if !s.Remove(1) {
		t.Fatal("Remove(1) failed")
	}
	if c := l.Img.NRGBAAt(2, 2); c != (color.NRGBA{}) {
		t.Errorf("removed record still visible: %v", c)
	}
	if s.Remove(1) {
		t.Error("second Remove(1) succeeded")
	}

	// putting a back must restore it below b
	s.Append(a)
	if !l.Snapshot().Equal(want) {
		t.Error("layer differs after remove and re-append")
	}
	items := s.Items()
	if len(items) != 2 || items[0].id != 1 || items[1].id != 2 {
		t.Errorf("items %v, want ids 1, 2", items)
	}
}

func TestGet(t *testing.T) {
	s := New[box](layer.New(4, 4), &boxRenderer{})
	s.Append(box{id: 7})
	if b, ok := s.Get(7); !ok || b.id != 7 {
		t.Errorf("Get(7) = %v, %t", b, ok)
	}
	if _, ok := s.Get(8); ok {
		t.Error("Get(8) found a record")
	}
}

func TestCutOrdering(t *testing.T) {
	l := layer.New(20, 20)
	s := New[box](l, &boxRenderer{})

	s.Append(box{1, image.Rect(0, 0, 20, 20), red})
	s.Cut(cutRect(1, 0, 0, 10, 20))
	if l.Solid(5, 5) || !l.Solid(15, 5) {
		t.Fatal("cut did not erase its area")
	}

	// records drawn after the cut are not affected by it
	s.Append(box{2, image.Rect(0, 0, 5, 5), blue})
	if c := l.Img.NRGBAAt(2, 2); c != blue {
		t.Errorf("later record erased: %v", c)
	}
	want := l.Snapshot()

	s.Redraw()
	if !l.Snapshot().Equal(want) {
		t.Error("Redraw does not reproduce the layer")
	}

	// undo and redo of the cut
	if !s.Uncut(1) {
		t.Fatal("Uncut failed")
	}
	if c := l.Img.NRGBAAt(7, 7); c != red {
		t.Errorf("Uncut did not restore: %v", c)
	}
	s.Cut(cutRect(1, 0, 0, 10, 20))
	if !l.Snapshot().Equal(want) {
		t.Error("re-applied cut lost its place in the order")
	}
	if s.Uncut(9) {
		t.Error("Uncut of unknown id succeeded")
	}
}

func TestClear(t *testing.T) {
	l := layer.New(10, 10)
	s := New[box](l, &boxRenderer{})
	s.Append(box{1, image.Rect(0, 0, 5, 5), red})
	s.Cut(cutRect(1, 0, 0, 2, 2))
	s.Clear()
	if s.Len() != 0 || !l.IsClear(l.Bounds()) {
		t.Error("Clear left content behind")
	}
}

func TestLineStore(t *testing.T) {
	l := layer.New(160, 20)
	s := New[Line](l, &LineRenderer{Width: 3, Color: color.NRGBA{A: 255}, Cap: graphics.LineCapButt})
	s.Append(Line{ID: 1, X1: 0, Y1: 10, X2: 140, Y2: 10})
	if !l.Solid(70, 10) || !l.Solid(70, 9) {
		t.Error("line not painted")
	}
	if l.Solid(150, 10) || l.Solid(70, 14) {
		t.Error("line painted outside its outline")
	}
	s.Remove(1)
	if !l.IsClear(l.Bounds()) {
		t.Error("line still visible after Remove")
	}
}

func TestStampStore(t *testing.T) {
	l := layer.New(100, 100)
	s := New[Stamp](l, StampRenderer{})

	s.Append(Stamp{ID: 1, X: 10, Y: 10, Width: 20, Height: 20})
	if !l.IsClear(l.Bounds()) {
		t.Error("stamp without image painted pixels")
	}

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	s.Append(Stamp{ID: 2, Image: img, X: 40, Y: 40, Width: 20, Height: 20})
	if !l.Solid(40, 40) || !l.Solid(59, 59) || l.Solid(60, 60) {
		t.Error("stamp not scaled into its box")
	}
}

func TestStampContains(t *testing.T) {
	st := Stamp{X: 70, Y: 70, Width: 70, Height: 70}
	cases := []struct {
		x, y float64
		want bool
	}{
		{70, 70, true},
		{139.9, 100, true},
		{140, 100, false},
		{100, 140, false},
		{69.9, 100, false},
	}
	for _, tc := range cases {
		if got := st.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%g, %g) = %t", tc.x, tc.y, got)
		}
	}
	if r := st.Rect(); r != image.Rect(70, 70, 140, 140) {
		t.Errorf("Rect = %v", r)
	}
}
