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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeSegment renders the straight segment a→b, in user space, with the
// current Width and Cap. A zero-length segment produces a dot for round
// caps, an axis-aligned square for square caps and nothing for butt caps.
//
// Consecutive segments stroked with round caps overlap in a disc around
// the shared point, which gives the appearance of a round join.
func (r *Rasteriser) StrokeSegment(a, b vec.Vec2, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.outline = r.outline[:0]

	d := r.Width / 2
	v := b.Sub(a)
	length := v.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.outline = append(r.outline, a.Add(vec.Vec2{X: d}))
			r.arc(a, d, vec.Vec2{X: 1}, 2*math.Pi)
		case graphics.LineCapSquare:
			r.rectOutline(a, a, vec.Vec2{X: 1}, d)
		default:
			return
		}
		r.fillOutline(emit)
		return
	}

	t := v.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapRound:
		r.outline = append(r.outline, a.Add(n.Mul(d)), b.Add(n.Mul(d)))
		r.arc(b, d, n, -math.Pi) // through b + t*d
		r.outline = append(r.outline, a.Sub(n.Mul(d)))
		r.arc(a, d, n.Mul(-1), -math.Pi) // through a - t*d
	case graphics.LineCapSquare:
		r.rectOutline(a.Sub(t.Mul(d)), b.Add(t.Mul(d)), t, d)
	default:
		r.rectOutline(a, b, t, d)
	}
	r.fillOutline(emit)
}

// rectOutline adds the rectangle of half-width d around the segment a→b
// with unit tangent t.
func (r *Rasteriser) rectOutline(a, b, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	if a == b {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}
	r.outline = append(r.outline,
		a.Add(n.Mul(d)), b.Add(n.Mul(d)),
		b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
}

// arc continues the outline along a circular arc around center. The arc
// starts at center + radius*startDir, which must be the last outline point, and
// sweeps by the given angle (positive is counter-clockwise in user space).
func (r *Rasteriser) arc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	// A chord spanning angle θ deviates from the circle by at most
	// radius*(1-cos(θ/2)); choose θ so that this equals Flatness.
	n := 1
	if devRadius := r.deviceLength(radius); devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = int(math.Ceil(math.Abs(sweep) / step))
		}
	}
	n = max(n, 4)

	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
