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

// Package markup converts a small subset of LaTeX-like math notation into
// display markup.
//
// [Transcode] applies an ordered list of pattern substitutions. Each rule
// scans the whole current string and replaces all matches before the next
// rule runs, so later rules see the output of earlier ones. Commands
// outside the supported set are deleted, never reported. The elements
// Transcode generates are b, i, sub, sup, br and span (for fractions).
//
// Markup already present in the input passes through verbatim: the output
// of \text{<script>} is <script>. Callers must not treat the output as
// sanitized and have to escape or filter untrusted input themselves.
//
// Fraction, root and script arguments are matched one brace level deep.
// Nested constructs are not guaranteed to come out right.
package markup

import (
	"regexp"
	"strings"
)

// Rule is one substitution step of the transcoder. Replacement may refer
// to submatches as $1, $2, as in [regexp.Regexp.ReplaceAllString].
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func rule(pattern, replacement string) Rule {
	return Rule{
		Pattern:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

// rules lists the transcoder steps in the order they are applied.
var rules = []Rule{
	rule(`\\text\{([^}]*)\}`, "$1"),
	rule(`\\textbf\{([^}]*)\}`, "<b>$1</b>"),
	rule(`\\textit\{([^}]*)\}`, "<i>$1</i>"),
	rule(`\\frac\{([^}]*)\}\{([^}]*)\}`,
		`<span class="frac"><span class="frac-n">$1</span><span class="frac-d">$2</span></span>`),
	rule(`\\sqrt\{([^}]*)\}`, "√($1)"),

	// braced scripts first, so that _{12} is not cut down to _1
	rule(`_\{([^}]*)\}`, "<sub>$1</sub>"),
	rule(`_([A-Za-z0-9])`, "<sub>$1</sub>"),
	rule(`\^\{([^}]*)\}`, "<sup>$1</sup>"),
	rule(`\^([A-Za-z0-9])`, "<sup>$1</sup>"),

	rule(`\\to\b`, "→"),
	rule(`\\rightarrow\b`, "→"),
	rule(`\\leftarrow\b`, "←"),
	rule(`\\times\b`, "×"),
	rule(`\\cdot\b`, "·"),
	rule(`\\pm\b`, "±"),
	rule(`\\leq\b`, "≤"),
	rule(`\\geq\b`, "≥"),
	rule(`\\neq\b`, "≠"),
	rule(`\\approx\b`, "≈"),
	rule(`\\infty\b`, "∞"),

	rule(`\\alpha\b`, "α"),
	rule(`\\beta\b`, "β"),
	rule(`\\gamma\b`, "γ"),
	rule(`\\delta\b`, "δ"),
	rule(`\\Delta\b`, "Δ"),
	rule(`\\theta\b`, "θ"),
	rule(`\\pi\b`, "π"),
	rule(`\\mu\b`, "μ"),
	rule(`\\lambda\b`, "λ"),
	rule(`\\sigma\b`, "σ"),
	rule(`\\omega\b`, "ω"),

	rule(`\\[!,;:]+`, ""),
	rule(`\\q?quad\b`, " "),
	rule(`\\\\`, "<br>"),

	// anything still looking like a command is dropped
	rule(`\\[a-zA-Z]+`, ""),
	rule(`[{}]`, ""),
	rule(` {2,}`, " "),
}

// Rules returns a copy of the transcoder's substitution table, in the
// order the rules are applied.
func Rules() []Rule {
	res := make([]Rule, len(rules))
	copy(res, rules)
	return res
}

// Transcode converts math notation into display markup. It never fails:
// unsupported commands are removed. Transcode must be applied to raw input
// exactly once; feeding its output back in is not meaningful.
func Transcode(s string) string {
	for _, r := range rules {
		s = r.Pattern.ReplaceAllString(s, r.Replacement)
	}
	return strings.TrimSpace(s)
}
