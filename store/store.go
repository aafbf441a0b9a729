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

// Package store keeps the ordered lists of vector objects drawn on a map,
// lines and stamps, together with the raster layer each list is shown on.
//
// Appending an object paints only that object.  Removing an object
// repaints the whole layer from the remaining list.  Delete-mode shapes
// erase areas of these layers; such erasures are recorded as [Cut] values
// in the same ordered history, so that a full repaint replays them at the
// right place.
package store

import (
	"cmp"
	"image/color"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/mapedit/raster"
)

// Record is an object which can be kept in a [Store].
type Record interface {
	RecordID() int
}

// Renderer paints single records onto a layer.
type Renderer[T Record] interface {
	Render(dst *layer.Layer, rec T)
}

// Cut is an area erased from a layer.
type Cut struct {
	ID   int
	Path *path.Data
}

type entry[T Record] struct {
	seq uint64
	rec T
}

type cutEntry struct {
	seq uint64
	cut Cut
}

// Store is an ordered list of records shown on one layer.
//
// Every record and cut is given a sequence number the first time it is
// added.  The number is kept when the object is removed, so that undoing
// a removal puts the object back at its original place in the stacking
// order.
type Store[T Record] struct {
	dst  *layer.Layer
	rend Renderer[T]
	r    *raster.Rasteriser

	items []entry[T]
	cuts  []cutEntry

	itemSeq map[int]uint64
	cutSeq  map[int]uint64
	nextSeq uint64
}

// New returns an empty store which shows its records on dst.
func New[T Record](dst *layer.Layer, rend Renderer[T]) *Store[T] {
	return &Store[T]{
		dst:     dst,
		rend:    rend,
		r:       raster.NewRasteriser(dst.Clip()),
		itemSeq: make(map[int]uint64),
		cutSeq:  make(map[int]uint64),
	}
}

func (s *Store[T]) seqOf(m map[int]uint64, id int) uint64 {
	if seq, ok := m[id]; ok {
		return seq
	}
	s.nextSeq++
	m[id] = s.nextSeq
	return s.nextSeq
}

// lastSeq returns the highest sequence number currently present.
func (s *Store[T]) lastSeq() uint64 {
	var last uint64
	if n := len(s.items); n > 0 {
		last = s.items[n-1].seq
	}
	if n := len(s.cuts); n > 0 {
		last = max(last, s.cuts[n-1].seq)
	}
	return last
}

// Append adds rec to the store.  If rec ends up on top it is painted
// directly, otherwise the layer is repainted.  Appending an id which is
// already present does nothing.
func (s *Store[T]) Append(rec T) {
	if s.index(rec.RecordID()) >= 0 {
		return
	}
	seq := s.seqOf(s.itemSeq, rec.RecordID())
	onTop := seq > s.lastSeq()

	i, _ := slices.BinarySearchFunc(s.items, seq, func(e entry[T], seq uint64) int {
		return cmp.Compare(e.seq, seq)
	})
	s.items = slices.Insert(s.items, i, entry[T]{seq: seq, rec: rec})

	if onTop {
		s.rend.Render(s.dst, rec)
	} else {
		s.Redraw()
	}
}

// Remove deletes the record with the given id and repaints the layer.
// It reports whether a record was removed.
func (s *Store[T]) Remove(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.Redraw()
	return true
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i].rec, true
	}
	var zero T
	return zero, false
}

// Items returns the records from oldest to newest.
func (s *Store[T]) Items() []T {
	res := make([]T, len(s.items))
	for i, e := range s.items {
		res[i] = e.rec
	}
	return res
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

func (s *Store[T]) index(id int) int {
	return slices.IndexFunc(s.items, func(e entry[T]) bool {
		return e.rec.RecordID() == id
	})
}

// Cut erases the area of c from the layer and records it.
func (s *Store[T]) Cut(c Cut) {
	if slices.ContainsFunc(s.cuts, func(e cutEntry) bool { return e.cut.ID == c.ID }) {
		return
	}
	seq := s.seqOf(s.cutSeq, c.ID)
	onTop := seq > s.lastSeq()

	i, _ := slices.BinarySearchFunc(s.cuts, seq, func(e cutEntry, seq uint64) int {
		return cmp.Compare(e.seq, seq)
	})
	s.cuts = slices.Insert(s.cuts, i, cutEntry{seq: seq, cut: c})

	if onTop {
		s.applyCut(c)
	} else {
		s.Redraw()
	}
}

// Uncut forgets the cut with the given id and repaints the layer.
func (s *Store[T]) Uncut(id int) bool {
	i := slices.IndexFunc(s.cuts, func(e cutEntry) bool { return e.cut.ID == id })
	if i < 0 {
		return false
	}
	s.cuts = slices.Delete(s.cuts, i, i+1)
	s.Redraw()
	return true
}

func (s *Store[T]) applyCut(c Cut) {
	s.r.Reset(s.dst.Clip())
	s.dst.Fill(s.r, c.Path, color.NRGBA{}, layer.Punch)
}

// Redraw repaints the layer from scratch, merging records and cuts in
// sequence order.
func (s *Store[T]) Redraw() {
	s.dst.Clear()
	i, j := 0, 0
	for i < len(s.items) || j < len(s.cuts) {
		if j == len(s.cuts) || (i < len(s.items) && s.items[i].seq < s.cuts[j].seq) {
			s.rend.Render(s.dst, s.items[i].rec)
			i++
		} else {
			s.applyCut(s.cuts[j].cut)
			j++
		}
	}
}

// Clear removes all records and cuts and forgets their sequence numbers.
func (s *Store[T]) Clear() {
	s.items = nil
	s.cuts = nil
	clear(s.itemSeq)
	clear(s.cutSeq)
	s.dst.Clear()
}
