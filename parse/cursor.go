// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The source cursor: tracks byte offset, line, and column, and
// advances on pattern matches.

package parse

import "regexp"

// cursor walks an input string one pattern match at a time. It owns
// no state beyond what's needed to report a position: offset, line,
// column, and the offset of the most recent ":" (lastrel), used to
// report the position of a dangling named attribute.
type cursor struct {
	text string
	pos  int
	line int // 1-indexed
	col  int // 0-indexed

	// lastrel is the position of the most recently consumed ":",
	// kept so "forgot to assign a value" errors can point at it
	// instead of at the current (later) position.
	lastrel int
}

func newCursor(text string) *cursor {
	return &cursor{text: text, line: 1}
}

// peek matches re against the text starting at pos without consuming
// anything. Returns the matched string and whether it matched; re
// must be anchored (see anchored in patterns.go).
func (c *cursor) peek(re *regexp.Regexp) (string, bool) {
	loc := re.FindStringIndex(c.text[c.pos:])
	if loc == nil {
		return "", false
	}
	return c.text[c.pos:][loc[0]:loc[1]], true
}

// advance moves pos forward by len(matched), updating line/col by
// counting the line endings inside matched.
func (c *cursor) advance(matched string) {
	c.pos += len(matched)
	lines := reLines.Split(matched, -1)
	if len(lines) > 1 {
		c.line += len(lines) - 1
		c.col = len(lines[len(lines)-1])
	} else {
		c.col += len(matched)
	}
}

// maybe consumes a match of re if present, returning it, else returns
// ("", false) and leaves the cursor untouched.
func (c *cursor) maybe(re *regexp.Regexp) (string, bool) {
	m, ok := c.peek(re)
	if !ok {
		return "", false
	}
	c.advance(m)
	return m, true
}

// expect consumes a match of re, or fails with a ParseError naming
// label at the current position.
func (c *cursor) expect(re *regexp.Regexp, label string) (string, error) {
	if m, ok := c.maybe(re); ok {
		return m, nil
	}
	return "", &ParseError{Message: "Expected " + label, Line: c.line, Col: c.col}
}

// atEOF reports whether the cursor has consumed the entire input.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.text)
}

// lastrelPosition recomputes the line/col of the lastrel offset by
// counting line endings in the text up to that point.
func (c *cursor) lastrelPosition() (line, col int) {
	prefix := c.text[:c.lastrel]
	lines := reLines.Split(prefix, -1)
	return len(lines), len(lines[len(lines)-1])
}
