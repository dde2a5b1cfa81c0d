package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// BenchmarkStrokeSegment benchmarks a round-capped diagonal segment.
func BenchmarkStrokeSegment(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			from := vec.Vec2{X: float64(size) * 0.1, Y: float64(size) * 0.2}
			to := vec.Vec2{X: float64(size) * 0.9, Y: float64(size) * 0.7}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 8
				r.Cap = graphics.LineCapRound
				r.StrokeSegment(from, to, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorSegment draws the same capsule with x/image/vector.
func BenchmarkVectorSegment(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			x0, y0 := float32(size)*0.1, float32(size)*0.2
			x1, y1 := float32(size)*0.9, float32(size)*0.7

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCapsule(r, x0, y0, x1, y1, 4)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addCapsule adds a round-capped segment outline to a vector.Rasterizer,
// approximating each cap by 16 chords.
func addCapsule(r *vector.Rasterizer, x0, y0, x1, y1, radius float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/l*radius, dx/l*radius

	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	addHalfCircle(r, x1, y1, nx, ny)
	r.LineTo(x0-nx, y0-ny)
	addHalfCircle(r, x0, y0, -nx, -ny)
	r.ClosePath()
}

func addHalfCircle(r *vector.Rasterizer, cx, cy, sx, sy float32) {
	const n = 16
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(-math.Pi * float64(i) / n)
		s, c := float32(sin), float32(cos)
		r.LineTo(cx+sx*c-sy*s, cy+sx*s+sy*c)
	}
}
