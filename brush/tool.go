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

package brush

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Phase is the state of a click state machine.
type Phase int

const (
	// Idle means no stroke is in progress.
	Idle Phase = iota

	// Anchored means the first corner of a two-click stroke is set.
	Anchored

	// Collecting means a polygon has at least one vertex.
	Collecting
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Anchored:
		return "anchored"
	case Collecting:
		return "collecting"
	default:
		return "unknown"
	}
}

// TwoClick collects the two end points of a rectangle, circle or line.
// The zero value is idle.
type TwoClick struct {
	phase  Phase
	anchor vec.Vec2
}

// Phase returns the current state.
func (t *TwoClick) Phase() Phase {
	return t.phase
}

// Anchor returns the first point, if one is set.
func (t *TwoClick) Anchor() (vec.Vec2, bool) {
	return t.anchor, t.phase == Anchored
}

// Click feeds a click at guide point p into the machine.  valid is false
// if the click did not snap to a guide point, in which case nothing
// changes.  When the click completes the stroke, Click returns both end
// points and done is true, and the machine is idle again.  A second click
// on the anchor itself is ignored.
func (t *TwoClick) Click(p vec.Vec2, valid bool) (a, b vec.Vec2, done bool) {
	if !valid {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	switch t.phase {
	case Idle:
		t.anchor = p
		t.phase = Anchored
		return vec.Vec2{}, vec.Vec2{}, false
	default:
		if p == t.anchor {
			return vec.Vec2{}, vec.Vec2{}, false
		}
		a = t.anchor
		t.Reset()
		return a, p, true
	}
}

// Reset abandons a pending stroke.
func (t *TwoClick) Reset() {
	*t = TwoClick{}
}

// PolygonTool collects polygon vertices.  The polygon is closed by
// clicking the first vertex again.  The zero value is idle.
type PolygonTool struct {
	vertices []vec.Vec2
}

// minPolygonVertices is the smallest number of vertices a closing click
// accepts.
const minPolygonVertices = 3

// Phase returns the current state.
func (t *PolygonTool) Phase() Phase {
	if len(t.vertices) == 0 {
		return Idle
	}
	return Collecting
}

// Vertices returns a copy of the vertices collected so far.
func (t *PolygonTool) Vertices() []vec.Vec2 {
	return slices.Clone(t.vertices)
}

// Click feeds a click at guide point p into the machine.  Invalid clicks
// are ignored.  A click on the first vertex closes the polygon if it has
// at least three vertices; the completed polygon is returned with done
// set, and the machine is idle again.  Clicking the first vertex of a
// shorter polygon, or the last vertex again, does nothing.
func (t *PolygonTool) Click(p vec.Vec2, valid bool) (poly Polygon, done bool) {
	if !valid {
		return Polygon{}, false
	}
	n := len(t.vertices)
	switch {
	case n == 0:
		t.vertices = append(t.vertices, p)
	case p == t.vertices[0]:
		if n < minPolygonVertices {
			return Polygon{}, false
		}
		poly = Polygon{Vertices: t.vertices}
		t.vertices = nil
		return poly, true
	case p == t.vertices[n-1]:
		// repeated click
	default:
		t.vertices = append(t.vertices, p)
	}
	return Polygon{}, false
}

// Reset abandons a pending polygon.
func (t *PolygonTool) Reset() {
	t.vertices = nil
}
