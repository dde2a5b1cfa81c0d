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

// Command export plays every gesture case onto a fresh surface and writes
// the resulting bitmaps as PNG files, together with a JSON index, for
// visual inspection. Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/testcases"
)

func main() {
	outDir := flag.String("o", "testdata", "output directory")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

type jsonCase struct {
	Name   string      `json:"name"`
	File   string      `json:"file"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Scale  float64     `json:"scale"`
	Inked  [][]float64 `json:"inked,omitempty"`
	Blank  [][]float64 `json:"blank,omitempty"`
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			s, err := ink.Replay(tc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			img, err := s.Export()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			file := name + ".png"
			if err := os.WriteFile(filepath.Join(outDir, file), img.PNG, 0o644); err != nil {
				return err
			}

			st := s.State()
			out.TestCases = append(out.TestCases, jsonCase{
				Name:   name,
				File:   file,
				Width:  st.BackingWidth,
				Height: st.BackingHeight,
				Scale:  st.PixelScale,
				Inked:  pointsToJSON(tc.Inked),
				Blank:  pointsToJSON(tc.Blank),
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
