package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkRasteriserO benchmarks our rasteriser filling an "O" shape into
// a binary mask, the way the solid layer is painted.
func BenchmarkRasteriserO(b *testing.B) {
	sizes := []int{70, 700, 2100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(oPath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						if c >= 0.5 {
							row[i] = 255
						}
					}
				})
			}
		})
	}
}

// BenchmarkStrokeLine benchmarks a long diagonal line, as drawn by the line
// tool.
func BenchmarkStrokeLine(b *testing.B) {
	const size = 700
	clip := rect.Rect{URx: size, URy: size}
	r := NewRasteriser(clip)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: size, Y: size})

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 3
		r.Stroke(line, func(y, xMin int, coverage []float32) {
			row := dst.Pix[y*dst.Stride+xMin:]
			for i, c := range coverage {
				row[i] = uint8(c * 255)
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{70, 700, 2100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeOPath creates an "O" shape: the outer circle counter-clockwise, the
// inner circle clockwise, so that the nonzero rule leaves a hole.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	addCircleToPath(p, cx, cy, outerR, false)
	addCircleToPath(p, cx, cy, innerR, true)
	return p
}

// addCircleToPath appends a circle made of four cubic Bézier arcs.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r
	if clockwise {
		kr = -kr
	}

	// start at the top, the sign of kr chooses the direction
	sx := 1.0
	if clockwise {
		sx = -1
	}
	p.MoveTo(vec.Vec2{X: cx, Y: cy - r})
	p.CubeTo(vec.Vec2{X: cx + kr, Y: cy - r}, vec.Vec2{X: cx + sx*r, Y: cy - k*r}, vec.Vec2{X: cx + sx*r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + sx*r, Y: cy + k*r}, vec.Vec2{X: cx + kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
	p.CubeTo(vec.Vec2{X: cx - kr, Y: cy + r}, vec.Vec2{X: cx - sx*r, Y: cy + k*r}, vec.Vec2{X: cx - sx*r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - sx*r, Y: cy - k*r}, vec.Vec2{X: cx - kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
	p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
