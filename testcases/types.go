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

// Package testcases holds scripted pointer gestures and markup samples
// shared by the tests, benchmarks and the reference image exporter.
package testcases

import "seehuhn.de/go/geom/vec"

// Kind is the type of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	End
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Event is one scripted pointer or touch event, in client coordinates.
type Event struct {
	Kind      Kind
	PointerID int     // 0 for touch input
	X, Y      float64 // client position for pointer input
	Touches   []vec.Vec2
}

// Stroke is a run of events drawn with one tool.
type Stroke struct {
	Tool   string  // "pen" or "eraser"
	Size   float64 // base line width in logical units
	Events []Event
}

// Gesture defines a single ink test: a container, a device scale, and the
// strokes played onto it. Inked and Blank list backing-store pixels that
// must end up opaque or fully transparent.
type Gesture struct {
	Name string // lowercase a-z and _ only

	Left, Top     float64 // container origin in client coordinates
	Width, Height float64 // container size in logical units
	Scale         float64 // device pixel density

	Strokes []Stroke

	Inked []vec.Vec2
	Blank []vec.Vec2
}

// MarkupCase is a transcoder input with its exact expected output.
type MarkupCase struct {
	Name string
	In   string
	Want string
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line returns down, moves through the given client points, and end, all
// for one pointer.
func line(id int, pts ...vec.Vec2) []Event {
	events := make([]Event, 0, len(pts)+1)
	for i, p := range pts {
		kind := Move
		if i == 0 {
			kind = Down
		}
		events = append(events, Event{Kind: kind, PointerID: id, X: p.X, Y: p.Y})
	}
	last := pts[len(pts)-1]
	return append(events, Event{Kind: End, PointerID: id, X: last.X, Y: last.Y})
}
