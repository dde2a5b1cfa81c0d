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

// Package raster computes anti-aliased pixel coverage for straight-edged
// polygons and stroked line segments.
//
// Coverage is delivered row by row through an emit callback, so that the
// caller decides how coverage is composited into its own pixel buffer.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. Coverage values are in
// the range 0 to 1 and start at pixel xMin. The slice is only valid during
// the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser converts outlines to pixel coverage. Create one instance and
// reuse it; internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the maximum deviation, in device pixels, allowed when
	// round caps are approximated by polygons. Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style of segment end points.
	Cap graphics.LineCapStyle

	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // area to the right of edges within each pixel
	edges     []edge
	activeIdx []int
	outline   []vec.Vec2 // closed polygon built by StrokeSegment

	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// identity CTM, unit width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.outline = r.outline[:0]
}

// FillNonZero fills the outline p using the nonzero winding rule.
//
// Only straight edges are rasterised: quadratic and cubic segments are
// replaced by the chord to their end point.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.beginEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.addEdge(current, end)
			current = end
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// filling implicitly closes open subpaths
	if current != start {
		r.addEdge(current, start)
	}

	r.fillEdges(emit)
}

// fillOutline fills the closed polygon held in r.outline.
func (r *Rasteriser) fillOutline(emit EmitFunc) {
	r.beginEdges()
	n := len(r.outline)
	for i, p := range r.outline {
		r.addEdge(p, r.outline[(i+1)%n])
	}
	r.fillEdges(emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// fillEdges scans the collected edges within their bounding box, clamped
// to the clip rectangle.
func (r *Rasteriser) fillEdges(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(max(r.bboxXMin, r.Clip.LLx))), int(r.Clip.LLx))
	xMax := min(int(math.Floor(min(r.bboxXMax, r.Clip.URx)))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(max(r.bboxYMin, r.Clip.LLy))), int(r.Clip.LLy))
	yMax := min(int(math.Floor(min(r.bboxYMax, r.Clip.URy)))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// toDevice applies the CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the larger of the device-space lengths of the user
// space vectors (l, 0) and (0, l).
func (r *Rasteriser) deviceLength(l float64) float64 {
	m := r.CTM
	a := math.Hypot(m[0]*l, m[1]*l)
	b := math.Hypot(m[2]*l, m[3]*l)
	return max(a, b)
}

// addEdge appends the user-space edge p0→p1 to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	d0 := r.toDevice(p0)
	d1 := r.toDevice(p1)

	dy := d1.Y - d0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(d0.X, d1.X), max(d0.X, d1.X)
		r.bboxYMin, r.bboxYMax = min(d0.Y, d1.Y), max(d0.Y, d1.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, d0.X, d1.X)
	r.bboxXMax = max(r.bboxXMax, d0.X, d1.X)
	r.bboxYMin = min(r.bboxYMin, d0.Y, d1.Y)
	r.bboxYMax = max(r.bboxYMax, d0.Y, d1.Y)
}

// scan walks the scanlines of the bounding box with an active edge list,
// accumulates cover and area for each row and emits the integrated result.
func (r *Rasteriser) scan(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.bottom() <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// Coverage model: an edge crossing pixel column x within scanline y
// contributes its signed vertical extent c to cover[x], and c times the
// fraction of the pixel lying right of the crossing to area[x]. Summing
// cover from the left and adding area gives the signed area of the shape
// inside each pixel.

// accumulate adds the contribution of e to scanline y and reports whether
// anything was added.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	// clamped first, so that far-away coordinates cannot overflow int
	colA := int(math.Floor(max(min(xa, xb), float64(xMin-1))))
	colB := int(math.Floor(min(max(xa, xb), float64(xMax))))
	colA = min(colA, colB)

	if colA == colB {
		r.deposit(colA, sign*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	dydx := 1 / e.dxdy
	if colA < xMin {
		// everything left of the buffer lands in the first pixel
		yc := e.y0 + dydx*(float64(xMin)-e.x0)
		lo, hi := yTop, min(yc, yBot)
		if xa > xb {
			lo, hi = max(yc, yTop), yBot
		}
		if hi > lo {
			r.deposit(xMin-1, sign*float32(hi-lo), 0, xMin, xMax)
		}
		colA = xMin
	}
	colB = min(colB, xMax-1)
	for col := colA; col <= colB; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		r.deposit(col, sign*float32(hi-lo), xMid, xMin, xMax)
	}
	return true
}

// deposit records a crossing of pixel column col with vertical extent c at
// mean horizontal position x. Crossings left of the buffer cover the whole
// first pixel; crossings right of it are irrelevant.
func (r *Rasteriser) deposit(col int, c float32, x float64, xMin, xMax int) {
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(x-float64(col)))
	}
}

// integrateNonZero turns accumulated cover/area into coverage values,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the sub-slice between the first and last non-zero
// entries, and the offset of its first entry.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default tolerance for round caps, in device
	// pixels. 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// that contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a segment is treated
	// as a single point.
	zeroLengthThreshold = 1e-10
)
