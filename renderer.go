// seehuhn.de/go/ink - freehand ink capture and math markup
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

package ink

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ink/raster"
)

// Renderer draws straight segments into the backing store of a surface.
// It keeps no record of what was drawn.
type Renderer struct {
	surface *Surface
	raster  *raster.Rasteriser
	brush   BrushConfig
}

// NewRenderer returns a renderer for s, with the default pen brush at
// scale 1.
func NewRenderer(s *Surface) *Renderer {
	return &Renderer{
		surface: s,
		raster:  raster.NewRasteriser(rect.Rect{}),
		brush:   Apply(Pen, DefaultStrokeSize, 1),
	}
}

// SetBrush sets the brush used by subsequent calls to DrawSegment.
func (r *Renderer) SetBrush(b BrushConfig) {
	r.brush = b
}

// Brush returns the current brush.
func (r *Renderer) Brush() BrushConfig {
	return r.brush
}

// DrawSegment draws one straight line from → to, in backing-store pixels,
// with the current brush and the surface's line cap.
func (r *Renderer) DrawSegment(from, to Point) {
	bm := r.surface.Bitmap()
	b := bm.Bounds()
	if b.Empty() {
		return
	}

	r.raster.Reset(rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())})
	r.raster.Width = r.brush.Width
	r.raster.Cap = r.surface.State().LineCap

	brush := r.brush
	r.raster.StrokeSegment(from, to, func(y, xMin int, coverage []float32) {
		row := bm.Pix[y*bm.Stride+xMin*4:]
		for i, c := range coverage {
			px := row[4*i : 4*i+4 : 4*i+4]
			switch brush.Mode {
			case EraseThrough:
				eraseThrough(px, float64(c))
			default:
				replaceOver(px, brush, float64(c))
			}
		}
	})
}

// Clear makes every pixel of the backing store fully transparent.
func (r *Renderer) Clear() {
	clear(r.surface.Bitmap().Pix)
}

// replaceOver composites the brush color with the given coverage over the
// non-premultiplied pixel px (source-over).
func replaceOver(px []uint8, brush BrushConfig, coverage float64) {
	sa := float64(brush.Color.A) / 255 * coverage
	if sa <= 0 {
		return
	}
	da := float64(px[3]) / 255
	outA := sa + da*(1-sa)
	a8 := to8(outA)
	if a8 == 0 {
		return
	}

	src := [3]uint8{brush.Color.R, brush.Color.G, brush.Color.B}
	for k := range 3 {
		sc := float64(src[k]) / 255
		dc := float64(px[k]) / 255
		px[k] = to8((sc*sa + dc*da*(1-sa)) / outA)
	}
	px[3] = a8
}

// eraseThrough removes alpha from the non-premultiplied pixel px in
// proportion to coverage (destination-out). A fully erased pixel becomes
// transparent black.
func eraseThrough(px []uint8, coverage float64) {
	a := to8(float64(px[3]) / 255 * (1 - coverage))
	if a == 0 {
		clear(px)
		return
	}
	px[3] = a
}

func to8(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}
