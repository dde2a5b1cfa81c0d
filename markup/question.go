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

package markup

import (
	"regexp"
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
)

var (
	fenceJSON   = regexp.MustCompile("(?i)```json")
	questionTag = regexp.MustCompile(`(?i)question[_\s-]*latex\s*[:=]`)
	answerTag   = regexp.MustCompile(`(?i)answer[_\s-]*text\s*[:=]`)
	semicolon   = regexp.MustCompile(`\s*;\s*`)
	escapedNL   = regexp.MustCompile(`\\n\b`)
	textCommand = regexp.MustCompile(`\\text\s*\{`)
	inlineMath  = regexp.MustCompile(`\$[^$]+\$`)
)

// CleanQuestion tidies a question as returned by a text generator: code
// fences, dollar delimiters and field labels are removed. In questions
// that contain text commands, semicolon separators (when no explicit line
// breaks are present) and escaped newlines become line breaks.
func CleanQuestion(raw string) string {
	s := fenceJSON.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.ReplaceAll(s, "$", "")
	s = questionTag.ReplaceAllString(s, "")
	s = answerTag.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if !strings.Contains(s, `\text`) {
		return s
	}
	if !strings.Contains(s, `\\`) && strings.Contains(s, ";") {
		s = semicolon.ReplaceAllLiteralString(s, ` \\ `)
	}
	// \n must not swallow the start of \neq, \nu and friends
	s = escapedNL.ReplaceAllLiteralString(s, ` \\ `)
	return s
}

// IsTextMode reports whether s contains a text command. Such questions
// are shown through [Transcode]; all others are pure formulas meant for a
// math renderer.
func IsTextMode(s string) bool {
	return textCommand.MatchString(s)
}

// Segment is a piece of feedback text.
type Segment struct {
	// Math is set for inline formulas. Their Text excludes the
	// surrounding dollar signs.
	Math bool
	Text string
}

// SplitInline splits text at inline formulas delimited by single dollar
// signs. Empty text runs are omitted.
func SplitInline(s string) []Segment {
	var res []Segment
	pos := 0
	for _, m := range inlineMath.FindAllStringIndex(s, -1) {
		if m[0] > pos {
			res = append(res, Segment{Text: s[pos:m[0]]})
		}
		res = append(res, Segment{Math: true, Text: s[m[0]+1 : m[1]-1]})
		pos = m[1]
	}
	if pos < len(s) {
		res = append(res, Segment{Text: s[pos:]})
	}
	return res
}

// PlainText transcodes s and removes all markup, for display on a plain
// text terminal. Line breaks become newlines.
func PlainText(s string) string {
	html := strings.ReplaceAll(Transcode(s), "<br>", "\n")
	lines := strings.Split(strip.StripTags(html), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n")
}
