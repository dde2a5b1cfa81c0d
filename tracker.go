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

import "seehuhn.de/go/geom/vec"

// PointerEvent is a pointer or touch event in client coordinates.
type PointerEvent struct {
	// PointerID identifies the pointer. Zero means the source has no
	// pointer identity, as for plain touch events.
	PointerID int

	ClientX, ClientY float64

	// Touches holds the client positions of the active touch points.
	// When non-empty, the first touch is used instead of ClientX/ClientY.
	Touches []vec.Vec2

	// DefaultPrevented is set by the Tracker to tell the host that the
	// platform's default gesture handling (scrolling, text selection)
	// must be suppressed.
	DefaultPrevented bool
}

// PreventDefault marks the event as handled.
func (e *PointerEvent) PreventDefault() {
	e.DefaultPrevented = true
}

func (e *PointerEvent) client() vec.Vec2 {
	if len(e.Touches) > 0 {
		return e.Touches[0]
	}
	return vec.Vec2{X: e.ClientX, Y: e.ClientY}
}

// Capturer pins all events of one pointer to the surface, even when the
// pointer leaves its bounds.
type Capturer interface {
	SetPointerCapture(pointerID int) error
	ReleasePointerCapture(pointerID int) error
}

// gesture is the state of the single in-flight gesture.
type gesture struct {
	active    bool
	pointerID int
	captured  bool
	last      Point
}

// owns reports whether an event from pointer id belongs to the gesture.
// Touch events carry id 0, so they only match a gesture begun by touch.
func (g *gesture) owns(id int) bool {
	return id == g.pointerID
}

// Tracker turns pointer events into drawn segments. At most one gesture is
// in flight at any time.
type Tracker struct {
	surface  *Surface
	renderer *Renderer
	capturer Capturer

	tool       Tool
	strokeSize float64

	g gesture
}

// NewTracker returns a tracker that draws with r onto s. The capturer may
// be nil, in which case pointers are tracked without capture.
func NewTracker(s *Surface, r *Renderer, c Capturer) *Tracker {
	return &Tracker{
		surface:    s,
		renderer:   r,
		capturer:   c,
		tool:       Pen,
		strokeSize: DefaultStrokeSize,
	}
}

// SetTool selects the tool for the following segments.
func (t *Tracker) SetTool(tool Tool) {
	t.tool = tool
}

// Tool returns the selected tool.
func (t *Tracker) Tool() Tool {
	return t.tool
}

// SetStrokeSize sets the base line width in logical units, clamped to
// [MinStrokeSize, MaxStrokeSize].
func (t *Tracker) SetStrokeSize(size float64) {
	t.strokeSize = max(MinStrokeSize, min(MaxStrokeSize, size))
}

// StrokeSize returns the base line width in logical units.
func (t *Tracker) StrokeSize() float64 {
	return t.strokeSize
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool {
	return t.g.active
}

// PointerDown starts a gesture at the event position. While another
// gesture is in progress the event is ignored.
func (t *Tracker) PointerDown(e *PointerEvent) {
	e.PreventDefault()
	if t.g.active {
		return
	}

	t.g = gesture{
		active:    true,
		pointerID: e.PointerID,
		last:      t.surface.Map(e.client()),
	}
	if e.PointerID != 0 && t.capturer != nil {
		if err := t.capturer.SetPointerCapture(e.PointerID); err != nil {
			Logger().Warn("pointer capture failed", "pointer", e.PointerID, "error", err)
		} else {
			t.g.captured = true
		}
	}
	Logger().Debug("gesture started", "pointer", e.PointerID, "tool", t.tool,
		"x", t.g.last.X, "y", t.g.last.Y)
}

// PointerMove draws a segment from the previous position of the gesture
// to the event position.
func (t *Tracker) PointerMove(e *PointerEvent) {
	e.PreventDefault()
	if !t.g.active || !t.g.owns(e.PointerID) {
		return
	}

	p := t.surface.Map(e.client())
	t.renderer.SetBrush(Apply(t.tool, t.strokeSize, t.surface.Scale()))
	t.renderer.DrawSegment(t.g.last, p)
	t.g.last = p
}

// PointerEnd finishes the gesture. It covers pointer up, leave and cancel
// alike and draws nothing.
func (t *Tracker) PointerEnd(e *PointerEvent) {
	e.PreventDefault()
	if !t.g.active || !t.g.owns(e.PointerID) {
		return
	}

	if t.g.captured && t.capturer != nil {
		if err := t.capturer.ReleasePointerCapture(t.g.pointerID); err != nil {
			Logger().Warn("pointer release failed", "pointer", t.g.pointerID, "error", err)
		}
	}
	Logger().Debug("gesture ended", "pointer", t.g.pointerID)
	t.g = gesture{}
}
