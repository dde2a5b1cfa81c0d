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

package testcases

import "seehuhn.de/go/geom/vec"

var penCases = []Gesture{
	{
		Name:  "horizontal",
		Width: 100, Height: 60, Scale: 2,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: line(1, pt(10, 30), pt(50, 30), pt(90, 30)),
		}},
		Inked: []vec.Vec2{pt(100, 60), pt(60, 60), pt(179, 60)},
		Blank: []vec.Vec2{pt(100, 70), pt(10, 60), pt(190, 60)},
	},
	{
		Name: "offset_container",
		Left: 100, Top: 50,
		Width: 100, Height: 60, Scale: 1.5,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: line(1, pt(110, 60), pt(150, 60)),
		}},
		Inked: []vec.Vec2{pt(45, 15), pt(20, 15)},
		Blank: []vec.Vec2{pt(45, 30), pt(100, 15)},
	},
	{
		Name:  "single_point",
		Width: 100, Height: 60, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 14,
			Events: line(1, pt(50, 30)),
		}},
		Blank: []vec.Vec2{pt(50, 30), pt(49, 29)},
	},
	{
		Name:  "move_without_down",
		Width: 100, Height: 100, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: []Event{
				{Kind: Move, PointerID: 1, X: 10, Y: 10},
				{Kind: Move, PointerID: 1, X: 90, Y: 90},
				{Kind: End, PointerID: 1, X: 90, Y: 90},
			},
		}},
		Blank: []vec.Vec2{pt(10, 10), pt(50, 50), pt(90, 90)},
	},
	{
		Name:  "diagonal",
		Width: 64, Height: 64, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 6,
			Events: line(1, pt(8, 8), pt(32, 32), pt(56, 56)),
		}},
		Inked: []vec.Vec2{pt(20, 20), pt(32, 32), pt(50, 50)},
		Blank: []vec.Vec2{pt(50, 10), pt(10, 50)},
	},
}

var eraserCases = []Gesture{
	{
		Name:  "cross",
		Width: 100, Height: 100, Scale: 1,
		Strokes: []Stroke{
			{
				Tool: "pen", Size: 4,
				Events: line(1, pt(10, 50), pt(90, 50)),
			},
			{
				Tool: "eraser", Size: 4,
				Events: line(1, pt(50, 10), pt(50, 90)),
			},
		},
		Inked: []vec.Vec2{pt(20, 50), pt(80, 50)},
		Blank: []vec.Vec2{pt(50, 50), pt(52, 50), pt(47, 49)},
	},
	{
		Name:  "blank_surface",
		Width: 40, Height: 40, Scale: 2,
		Strokes: []Stroke{{
			Tool: "eraser", Size: 14,
			Events: line(1, pt(5, 20), pt(35, 20)),
		}},
		Blank: []vec.Vec2{pt(40, 40), pt(10, 40)},
	},
}

var captureCases = []Gesture{
	{
		Name:  "second_pointer",
		Width: 100, Height: 100, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: []Event{
				{Kind: Down, PointerID: 1, X: 10, Y: 10},
				{Kind: Down, PointerID: 2, X: 90, Y: 90},
				{Kind: Move, PointerID: 2, X: 90, Y: 50},
				{Kind: Move, PointerID: 1, X: 50, Y: 10},
				{Kind: End, PointerID: 2, X: 90, Y: 50},
				{Kind: End, PointerID: 1, X: 50, Y: 10},
				{Kind: Move, PointerID: 2, X: 90, Y: 10},
			},
		}},
		Inked: []vec.Vec2{pt(30, 10)},
		Blank: []vec.Vec2{pt(70, 10), pt(90, 10), pt(90, 90), pt(90, 70)},
	},
	{
		Name:  "leave_bounds",
		Width: 100, Height: 100, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: line(3, pt(50, 50), pt(150, 50), pt(150, 80)),
		}},
		Inked: []vec.Vec2{pt(60, 50), pt(98, 50)},
		Blank: []vec.Vec2{pt(60, 80)},
	},
}

var touchCases = []Gesture{
	{
		Name:  "first_touch",
		Width: 100, Height: 100, Scale: 1,
		Strokes: []Stroke{{
			Tool: "pen", Size: 4,
			Events: []Event{
				{Kind: Down, Touches: []vec.Vec2{pt(20, 20), pt(80, 80)}},
				{Kind: Move, Touches: []vec.Vec2{pt(60, 20), pt(80, 60)}},
				{Kind: End},
			},
		}},
		Inked: []vec.Vec2{pt(40, 20)},
		Blank: []vec.Vec2{pt(80, 80), pt(80, 70)},
	},
}
