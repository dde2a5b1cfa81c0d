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
	"image/color"
)

// Tool selects what a gesture does to the bitmap.
type Tool int

const (
	Pen Tool = iota
	Eraser
)

func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool converts "pen" or "eraser" into a Tool.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return Pen, nil
	case "eraser":
		return Eraser, nil
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tool) MarshalText() ([]byte, error) {
	if t != Pen && t != Eraser {
		return nil, fmt.Errorf("unknown tool %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tool) UnmarshalText(text []byte) error {
	v, err := ParseTool(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// CompositeMode determines how a stroke combines with the pixels below.
type CompositeMode int

const (
	// ReplaceOver paints the stroke color over the destination
	// (source-over).
	ReplaceOver CompositeMode = iota

	// EraseThrough removes destination alpha where the stroke covers it
	// (destination-out).
	EraseThrough
)

func (m CompositeMode) String() string {
	switch m {
	case ReplaceOver:
		return "replace-over"
	case EraseThrough:
		return "erase-through"
	default:
		return fmt.Sprintf("CompositeMode(%d)", int(m))
	}
}

// BrushConfig is the rendering state for the next segment.
type BrushConfig struct {
	Mode  CompositeMode
	Width float64 // in backing-store pixels
	Color color.NRGBA
}

// PenColor is the fixed, opaque ink color of the pen.
var PenColor = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}

// Stroke size limits, in logical (display) units.
const (
	MinStrokeSize     = 2
	MaxStrokeSize     = 14
	DefaultStrokeSize = 4
)

// Apply derives the brush for a tool, a base line width in logical units
// and the surface pixel scale. The eraser is twice as wide as the pen and
// has no color.
func Apply(tool Tool, width, scale float64) BrushConfig {
	if tool == Eraser {
		return BrushConfig{
			Mode:  EraseThrough,
			Width: width * 2 * scale,
		}
	}
	return BrushConfig{
		Mode:  ReplaceOver,
		Width: width * scale,
		Color: PenColor,
	}
}
