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

// Package ink captures freehand ink on a resizable bitmap surface.
//
// A [Surface] owns the backing store and its relation to the displayed
// container size and device pixel density. A [Tracker] turns pointer and
// touch events into segments, which a [Renderer] composites into the
// backing store using the brush derived from the selected [Tool].
// [Surface.Export] encodes the current bitmap as a PNG data URL.
//
// All types in this package are meant to be driven from a single event
// loop and are not safe for concurrent use.
package ink

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Point is a position in backing-store pixels.
type Point = vec.Vec2

// State describes the geometry of a configured surface.
type State struct {
	// Bounds is the container rectangle in client coordinates, with
	// (LLx, LLy) the top-left corner.
	Bounds rect.Rect

	DisplayWidth  float64
	DisplayHeight float64
	PixelScale    float64

	// BackingWidth and BackingHeight are the backing store dimensions,
	// round(Display* × PixelScale).
	BackingWidth  int
	BackingHeight int

	LineCap graphics.LineCapStyle

	// LineJoin is informational. Segments are stroked one at a time, and
	// with round caps their overlapping end discs produce round joins.
	LineJoin graphics.LineJoinStyle
}

// Surface is the drawing surface: a transparent RGBA backing store sized
// from the container and the device pixel density.
type Surface struct {
	state      State
	configured bool
	bitmap     *image.NRGBA
}

// NewSurface returns an unconfigured surface. Its pixel scale is 1 and its
// bitmap is empty until the first successful [Surface.Configure].
func NewSurface() *Surface {
	return &Surface{
		state: State{
			PixelScale: 1,
			LineCap:    graphics.LineCapRound,
			LineJoin:   graphics.LineJoinRound,
		},
		bitmap: image.NewNRGBA(image.Rectangle{}),
	}
}

// Configure sizes the backing store for a container with the given client
// bounds, displayed on a device with the given pixel density. It must be
// called on mount and on every container resize.
//
// A new, fully transparent backing store is allocated, discarding the
// previous contents, and the line cap and join are reset to round.
//
// If the container has no measurable size, Configure does nothing and
// returns the previous state and false. A density that is not positive is
// treated as 1.
func (s *Surface) Configure(container rect.Rect, density float64) (State, bool) {
	w := container.URx - container.LLx
	h := container.URy - container.LLy
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		Logger().Warn("surface configuration deferred", "width", w, "height", h)
		return s.state, false
	}
	if !(density > 0) || math.IsInf(density, 0) {
		density = 1
	}

	bw := int(math.Round(w * density))
	bh := int(math.Round(h * density))
	if bw < 1 || bh < 1 {
		Logger().Warn("surface configuration deferred", "width", w, "height", h, "scale", density)
		return s.state, false
	}

	s.state = State{
		Bounds:        container,
		DisplayWidth:  w,
		DisplayHeight: h,
		PixelScale:    density,
		BackingWidth:  bw,
		BackingHeight: bh,
		LineCap:       graphics.LineCapRound,
		LineJoin:      graphics.LineJoinRound,
	}
	s.bitmap = image.NewNRGBA(image.Rect(0, 0, bw, bh))
	s.configured = true

	Logger().Debug("surface configured",
		"display", [2]float64{w, h}, "scale", density, "backing", [2]int{bw, bh})
	return s.state, true
}

// State returns the current geometry.
func (s *Surface) State() State {
	return s.state
}

// Configured reports whether Configure has succeeded at least once.
func (s *Surface) Configured() bool {
	return s.configured
}

// Scale returns the current pixel scale.
func (s *Surface) Scale() float64 {
	return s.state.PixelScale
}

// Bitmap returns the backing store. The image is replaced by the next
// successful Configure; callers must not hold on to it across resizes.
func (s *Surface) Bitmap() *image.NRGBA {
	return s.bitmap
}

// ClientToBacking returns the transformation from client coordinates to
// backing-store pixels: translate by the container origin, then scale by
// the pixel scale.
func (s *Surface) ClientToBacking() matrix.Matrix {
	k := s.state.PixelScale
	b := s.state.Bounds
	return matrix.Matrix{k, 0, 0, k, -b.LLx * k, -b.LLy * k}
}

// Map converts a client-space position into backing-store pixels using
// the live surface geometry.
func (s *Surface) Map(client vec.Vec2) Point {
	m := s.ClientToBacking()
	return Point{
		X: m[0]*client.X + m[2]*client.Y + m[4],
		Y: m[1]*client.X + m[3]*client.Y + m[5],
	}
}
