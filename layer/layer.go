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

// Package layer implements the raster layers of a map and their fixed
// stacking order.
//
// Every layer is an [image.NRGBA] of the canvas size.  Paths are painted
// into a layer through a [raster.Rasteriser], using one of the compositing
// operations [Over], [Erase], [Set] and [Punch].
package layer

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/mapedit/raster"
)

// Op selects how coverage is combined with the existing pixels.
type Op int

const (
	// Over composites the colour over the layer, weighted by coverage.
	Over Op = iota

	// Erase reduces the layer alpha in proportion to coverage.
	Erase

	// Set replaces every pixel with coverage of at least one half by the
	// colour.  Used for binary masks.
	Set

	// Punch clears every pixel with coverage of at least one half.
	Punch
)

// binaryThreshold is the coverage at which Set and Punch touch a pixel.
const binaryThreshold = 0.5

// Layer is a single raster buffer.
type Layer struct {
	Img *image.NRGBA
}

// New allocates a transparent layer of the given size.
func New(width, height int) *Layer {
	return &Layer{Img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the pixel rectangle of the layer.
func (l *Layer) Bounds() image.Rectangle {
	return l.Img.Rect
}

// Clip returns the layer bounds as a rasteriser clip rectangle.
func (l *Layer) Clip() rect.Rect {
	b := l.Img.Rect
	return rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
}

// Clear makes every pixel transparent.
func (l *Layer) Clear() {
	clear(l.Img.Pix)
}

// Painter returns an emit function which composites scanline coverage
// into the layer.  The rasteriser clip must lie inside the layer bounds.
func (l *Layer) Painter(c color.NRGBA, op Op) raster.EmitFunc {
	img := l.Img
	return func(y, xMin int, coverage []float32) {
		i := img.PixOffset(xMin, y)
		row := img.Pix[i : i+4*len(coverage)]
		for k, cov := range coverage {
			px := row[4*k : 4*k+4 : 4*k+4]
			switch op {
			case Over:
				blendOver(px, c, cov)
			case Erase:
				a := float32(px[3]) * (1 - cov)
				if a < 0.5 {
					clear(px)
				} else {
					px[3] = uint8(a + 0.5)
				}
			case Set:
				if cov >= binaryThreshold {
					px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
				}
			case Punch:
				if cov >= binaryThreshold {
					clear(px)
				}
			}
		}
	}
}

// blendOver composites non-premultiplied colour c with weight cov over px.
func blendOver(px []uint8, c color.NRGBA, cov float32) {
	sa := float32(c.A) / 255 * cov
	if sa <= 0 {
		return
	}
	da := float32(px[3]) / 255
	oa := sa + da*(1-sa)
	for i, sc := range [3]uint8{c.R, c.G, c.B} {
		v := (float32(sc)*sa + float32(px[i])*da*(1-sa)) / oa
		px[i] = uint8(min(v+0.5, 255))
	}
	px[3] = uint8(min(oa*255+0.5, 255))
}

// Fill fills p with the nonzero rule.  The rasteriser keeps its CTM; its
// clip is set to the layer bounds.
func (l *Layer) Fill(r *raster.Rasteriser, p *path.Data, c color.NRGBA, op Op) {
	r.Clip = l.Clip()
	r.FillNonZero(p, l.Painter(c, op))
}

// Stroke strokes p using the stroke parameters of r.
func (l *Layer) Stroke(r *raster.Rasteriser, p *path.Data, c color.NRGBA, op Op) {
	r.Clip = l.Clip()
	r.Stroke(p, l.Painter(c, op))
}

// FillRect paints the pixel rectangle rc with colour c, clipped to the
// layer.
func (l *Layer) FillRect(rc image.Rectangle, c color.NRGBA) {
	draw.Draw(l.Img, rc.Intersect(l.Img.Rect), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage scales src into the rectangle dst and composites it over the
// layer.  A nil src paints nothing.
func (l *Layer) DrawImage(src image.Image, dst image.Rectangle) {
	if src == nil || dst.Empty() {
		return
	}
	draw.BiLinear.Scale(l.Img, dst, src, src.Bounds(), draw.Over, nil)
}

// Solid reports whether the pixel at (x, y) has non-zero alpha.
func (l *Layer) Solid(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(l.Img.Rect) {
		return false
	}
	return l.Img.Pix[l.Img.PixOffset(x, y)+3] != 0
}

// Alpha returns the alpha values of the region rc, row by row.  Pixels
// outside the layer read as zero.
func (l *Layer) Alpha(rc image.Rectangle) []uint8 {
	res := make([]uint8, rc.Dx()*rc.Dy())
	in := rc.Intersect(l.Img.Rect)
	for y := in.Min.Y; y < in.Max.Y; y++ {
		for x := in.Min.X; x < in.Max.X; x++ {
			res[(y-rc.Min.Y)*rc.Dx()+(x-rc.Min.X)] = l.Img.Pix[l.Img.PixOffset(x, y)+3]
		}
	}
	return res
}

// IsClear reports whether every pixel of rc is transparent.  A region
// which is empty or extends past the layer edges is never clear.
func (l *Layer) IsClear(rc image.Rectangle) bool {
	if rc.Empty() || !rc.In(l.Img.Rect) {
		return false
	}
	for y := rc.Min.Y; y < rc.Max.Y; y++ {
		i := l.Img.PixOffset(rc.Min.X, y)
		row := l.Img.Pix[i : i+4*rc.Dx()]
		for k := 3; k < len(row); k += 4 {
			if row[k] != 0 {
				return false
			}
		}
	}
	return true
}

// Snapshot is a copy of the pixels of a layer.
type Snapshot struct {
	rect image.Rectangle
	pix  []uint8
}

// Snapshot copies the current layer content.
func (l *Layer) Snapshot() *Snapshot {
	return &Snapshot{rect: l.Img.Rect, pix: bytes.Clone(l.Img.Pix)}
}

// Restore replaces the layer content by s.  Snapshots of a layer with
// different bounds are ignored.
func (l *Layer) Restore(s *Snapshot) {
	if s == nil || s.rect != l.Img.Rect {
		return
	}
	copy(l.Img.Pix, s.pix)
}

// Equal reports whether both snapshots hold the same pixels.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.rect == other.rect && bytes.Equal(s.pix, other.pix)
}
