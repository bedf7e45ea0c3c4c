// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Lexical patterns for Snow: the fixed set of anchored regular
// patterns the cursor matches at its current position.

package parse

import "regexp"

// anchored compiles pattern so that it only ever matches at the start
// of whatever string slice it's handed; the cursor always hands it
// text[pos:], which is how Go's regexp package gets offset-anchored
// matching without a true "match at position" primitive.
func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + pattern + `)`)
}

var (
	// reLines splits on any line ending, used to recompute line/col.
	reLines = regexp.MustCompile(`\r\n|\n|\r`)

	reWhitespace = anchored(`\s+`)
	reOpenBrace  = anchored(`\{`)
	reCloseBrace = anchored(`\}`)
	reOpenBrack  = anchored(`\[`)
	reCloseBrack = anchored(`\]`)
	reColon      = anchored(`:`)

	// reName matches an unquoted name: one or more characters that are
	// not whitespace, a control character, or one of {}[]:"'. A
	// backslash may escape any such character so it can appear in a
	// name literally.
	reName = anchored(`(?:\\.|[^\s\x00-\x1f{}\[\]:"'])+`)

	// reNumber is only used by Text.ToNumber, never during parsing.
	reNumber = regexp.MustCompile(`(?i)\A[-+]?(?:(?:\d*\.\d+|\d+\.\d*)(?:e-?\d+)?|(0b|0|0x)?(\d+))\z`)

	// reString matches an optional raw prefix "r" followed by a
	// double-, single-, or backtick-quoted literal. Submatch groups:
	// 1 = raw marker, 2/3/4 = body for "  '  ` respectively.
	reString = anchored(`(r)?(?:"((?:[^\\"]|\\.)*)"|'((?:[^\\']|\\.)*)'|` + "`" + `((?:[^\\` + "`" + `]|\\.)*)` + "`" + `)`)

	// reNotagText is any run of characters other than { and ], used
	// for section bodies; \-escapes are permitted through.
	reNotagText = anchored(`(?:[^\\{\]]|\\.)*`)

	// reDocText is any run of characters other than {, used at the
	// top level of a document; \-escapes are permitted through.
	reDocText = anchored(`(?:[^\\{]|\\.)*`)

	// reControl matches a single ASCII control character.
	reControl = anchored(`[\x00-\x1f]`)

	// reQuote matches the start of a quoted literal (optionally raw),
	// used only to produce the "missing terminating X character" error.
	reQuote = anchored(`r?("|'|` + "`" + `)`)

	// reEscape matches a single backslash escape sequence inside a
	// non-raw quoted string.
	reEscape = regexp.MustCompile(`\\([abfnrtv'"]|x[\da-fA-F]{2}|u[\da-fA-F]{4}|U[\da-fA-F]{8}|[0-7]{3}|N\{[^}]*\})`)
)
