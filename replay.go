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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/ink/testcases"
)

// Replay configures a new surface for the scripted gesture tc and plays
// its strokes through a [Tracker]. It fails if the container cannot be
// configured, a tool name is unknown, an event is left with its default
// action, or a gesture is still in progress at the end of the script.
func Replay(tc testcases.Gesture) (*Surface, error) {
	s := NewSurface()
	container := rect.Rect{LLx: tc.Left, LLy: tc.Top, URx: tc.Left + tc.Width, URy: tc.Top + tc.Height}
	if _, ok := s.Configure(container, tc.Scale); !ok {
		return nil, fmt.Errorf("cannot configure %gx%g surface", tc.Width, tc.Height)
	}
	tr := NewTracker(s, NewRenderer(s), nil)

	for _, stroke := range tc.Strokes {
		tool, err := ParseTool(stroke.Tool)
		if err != nil {
			return nil, err
		}
		tr.SetTool(tool)
		tr.SetStrokeSize(stroke.Size)

		for i, ev := range stroke.Events {
			e := &PointerEvent{
				PointerID: ev.PointerID,
				ClientX:   ev.X,
				ClientY:   ev.Y,
				Touches:   ev.Touches,
			}
			switch ev.Kind {
			case testcases.Down:
				tr.PointerDown(e)
			case testcases.Move:
				tr.PointerMove(e)
			case testcases.End:
				tr.PointerEnd(e)
			default:
				return nil, fmt.Errorf("event %d: unknown kind %d", i, ev.Kind)
			}
			if !e.DefaultPrevented {
				return nil, fmt.Errorf("event %d: %s did not prevent default", i, ev.Kind)
			}
		}
	}
	if tr.Active() {
		return nil, fmt.Errorf("gesture still active after script")
	}
	return s, nil
}
