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

// Markup lists transcoder inputs with their exact expected output.
var Markup = []MarkupCase{
	{
		Name: "fraction",
		In:   `\frac{1}{2}`,
		Want: `<span class="frac"><span class="frac-n">1</span><span class="frac-d">2</span></span>`,
	},
	{
		Name: "square_root",
		In:   `\sqrt{x+1}`,
		Want: `√(x+1)`,
	},
	{
		Name: "text_and_power",
		In:   `\text{Area} = x^{2}`,
		Want: `Area = x<sup>2</sup>`,
	},
	{
		Name: "subscript_digit",
		In:   `x_1`,
		Want: `x<sub>1</sub>`,
	},
	{
		Name: "subscript_group",
		In:   `x_{12}`,
		Want: `x<sub>12</sub>`,
	},
	{
		Name: "subscript_letter",
		In:   `a_n`,
		Want: `a<sub>n</sub>`,
	},
	{
		Name: "operators",
		In:   `a \cdot b \times c \pm d`,
		Want: `a · b × c ± d`,
	},
	{
		Name: "relations",
		In:   `x \leq y \geq z \neq 0`,
		Want: `x ≤ y ≥ z ≠ 0`,
	},
	{
		Name: "greek",
		In:   `\alpha + \beta = \pi`,
		Want: `α + β = π`,
	},
	{
		Name: "line_break",
		In:   `a \\ b`,
		Want: `a <br> b`,
	},
	{
		Name: "spacing_commands",
		In:   `a\,b\quad c`,
		Want: `ab c`,
	},
	{
		Name: "unknown_command",
		In:   `\mathbb{R}`,
		Want: `R`,
	},
	{
		Name: "unknown_command_group",
		In:   `\unknowncmd{x}`,
		Want: `x`,
	},
	{
		Name: "text",
		In:   `\text{hello}`,
		Want: `hello`,
	},
	{
		Name: "arrow",
		In:   `a \to b`,
		Want: `a → b`,
	},
	{
		Name: "whitespace",
		In:   "  x   +   y  ",
		Want: `x + y`,
	},
	{
		Name: "emphasis",
		In:   `\textbf{F} = m\textit{a}`,
		Want: `<b>F</b> = m<i>a</i>`,
	},
	{
		Name: "arrows",
		In:   `A \to B \leftarrow C`,
		Want: `A → B ← C`,
	},
	{
		Name: "empty",
		In:   "",
		Want: "",
	},
}
