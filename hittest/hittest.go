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

// Package hittest finds the line or stamp a delete click refers to.
package hittest

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/mapedit/store"
)

// PointToSegmentDistance returns the distance from p to the segment a–b.
// The projection of p is clamped to the segment; a segment of length zero
// is treated as the point a.
func PointToSegmentDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(d) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Length()
}

// NearestLine returns the index of the line closest to p, if its distance
// is at most tol.  Lines are searched from newest to oldest and only a
// strictly smaller distance replaces a previous match, so on ties the
// most recent line wins.
func NearestLine(lines []store.Line, p vec.Vec2, tol float64) (int, bool) {
	best := -1
	bestDist := tol
	for i := len(lines) - 1; i >= 0; i-- {
		d := PointToSegmentDistance(p, lines[i].Start(), lines[i].End())
		if d > tol {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// TopmostStamp returns the index of the newest stamp whose box contains p.
func TopmostStamp(stamps []store.Stamp, p vec.Vec2) (int, bool) {
	for i := len(stamps) - 1; i >= 0; i-- {
		if stamps[i].Contains(p.X, p.Y) {
			return i, true
		}
	}
	return -1, false
}
