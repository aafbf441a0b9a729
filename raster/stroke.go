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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is built as a union of convex pieces: one quadrilateral per
// segment, plus join and cap pieces.  All pieces are oriented the same way,
// so that filling them together with the nonzero rule paints overlapping
// areas exactly once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)
	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]

	d := r.Width / 2
	if d <= 0 {
		return
	}
	for i := range r.flatStart {
		pts := dedup(r.subpath(i))
		closed := r.flatClosed[i]
		if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		r.strokeSubpath(pts, closed, d)
	}

	r.beginEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// strokeSubpath adds the outline pieces for one flattened subpath.
func (r *Rasteriser) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	switch len(pts) {
	case 0:
		return
	case 1:
		// zero-length subpaths only show with round or square caps
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(pts[0], d)
		case graphics.LineCapSquare:
			r.addPiece(
				vec.Vec2{X: pts[0].X - d, Y: pts[0].Y - d},
				vec.Vec2{X: pts[0].X + d, Y: pts[0].Y - d},
				vec.Vec2{X: pts[0].X + d, Y: pts[0].Y + d},
				vec.Vec2{X: pts[0].X - d, Y: pts[0].Y + d},
			)
		}
		return
	}

	n := len(pts)
	nSeg := n - 1
	if closed {
		nSeg = n
	}
	for k := range nSeg {
		a, b := pts[k], pts[(k+1)%n]
		t := unit(b.Sub(a))
		if !closed && r.Cap == graphics.LineCapSquare {
			if k == 0 {
				a = a.Sub(t.Mul(d))
			}
			if k == nSeg-1 {
				b = b.Add(t.Mul(d))
			}
		}
		nrm := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		r.addPiece(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	for k := range n {
		if !closed && (k == 0 || k == n-1) {
			continue
		}
		prev := pts[(k+n-1)%n]
		next := pts[(k+1)%n]
		r.addJoin(pts[k], unit(pts[k].Sub(prev)), unit(next.Sub(pts[k])), d)
	}

	if !closed && r.Cap == graphics.LineCapRound {
		r.addDisc(pts[0], d)
		r.addDisc(pts[n-1], d)
	}
}

// addJoin adds the join piece at vertex v between incoming direction t1
// and outgoing direction t2.
func (r *Rasteriser) addJoin(v, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(cross) < collinearityThreshold && t1.Dot(t2) > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(v, d)
		return
	}

	// the join goes on the outside of the turn
	side := d
	if cross > 0 {
		side = -d
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(side)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(side)
	p1, p2 := v.Add(n1), v.Add(n2)

	if r.Join == graphics.LineJoinMiter {
		cosPhi := n1.Dot(n2) / (d * d)
		half := math.Sqrt((1 + cosPhi) / 2) // cos of half the angle between the normals
		if half > 0 && 1/half <= r.MiterLimit {
			tip := v.Add(unit(n1.Add(n2)).Mul(d / half))
			r.addPiece(v, p1, tip, p2)
			return
		}
	}
	r.addPiece(v, p1, p2)
}

// addDisc adds a polygonal approximation of a disc.
func (r *Rasteriser) addDisc(c vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)
	n := minDiscSegments
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.outline)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		})
	}
	r.closePiece(start)
}

// addPiece adds a convex polygon to the outline.
func (r *Rasteriser) addPiece(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	r.closePiece(start)
}

// closePiece finishes the polygon starting at r.outline[start], making
// sure it has positive orientation.
func (r *Rasteriser) closePiece(start int) {
	poly := r.outline[start:]
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a == 0 {
		r.outline = r.outline[:start]
		return
	}
	if a < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.outlineStart = append(r.outlineStart, start)
}

// dedup removes consecutive duplicate points, in place.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() > zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

const (
	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// minDiscSegments keeps small dots round.
	minDiscSegments = 16
)
