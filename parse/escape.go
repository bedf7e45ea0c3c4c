// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// String escape processing for non-raw quoted literals.

package parse

import (
	"strconv"
	"strings"
)

var simpleEscapes = map[byte]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\'': '\'',
	'"':  '"',
}

// namedRunes resolves the \N{NAME} escape: a table of Unicode
// character names likely to show up in prose, punctuation and
// typographic marks that don't have their own single-character Snow
// escape.
var namedRunes = map[string]rune{
	"BULLET":                          '•',
	"EM DASH":                         '—',
	"EN DASH":                         '–',
	"HORIZONTAL ELLIPSIS":             '…',
	"LEFT DOUBLE QUOTATION MARK":      '“',
	"RIGHT DOUBLE QUOTATION MARK":     '”',
	"LEFT SINGLE QUOTATION MARK":      '‘',
	"RIGHT SINGLE QUOTATION MARK":     '’',
	"NO-BREAK SPACE":                  ' ',
	"DEGREE SIGN":                     '°',
	"COPYRIGHT SIGN":                  '©',
	"REGISTERED SIGN":                 '®',
	"TRADE MARK SIGN":                 '™',
	"LATIN SMALL LETTER E WITH ACUTE": 'é',
}

// unescape substitutes every run reEscape recognizes as a valid
// escape sequence within body, in place, leaving everything else
// (including a lone backslash followed by some other character)
// untouched. This mirrors applying a single substitution regex over
// the string rather than hand-scanning every backslash: a malformed
// attempt at an escape is not an error, it's just not an escape.
func unescape(body string) (string, error) {
	matches := reEscape.FindAllStringSubmatchIndex(body, -1)
	if matches == nil {
		return body, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(body[last:m[0]])
		code := body[m[2]:m[3]]
		r, err := decodeEscape(code)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		last = m[1]
	}
	b.WriteString(body[last:])
	return b.String(), nil
}

// decodeEscape turns the portion of an escape after the backslash
// (as captured by reEscape's one submatch group) into a rune. The
// shape of code is already guaranteed by reEscape, except for whether
// a \N{NAME} name is actually known.
func decodeEscape(code string) (rune, error) {
	if len(code) == 1 {
		if r, ok := simpleEscapes[code[0]]; ok {
			return r, nil
		}
	}
	switch code[0] {
	case 'x':
		n, err := strconv.ParseInt(code[1:], 16, 32)
		return rune(n), err
	case 'u':
		n, err := strconv.ParseInt(code[1:], 16, 32)
		return rune(n), err
	case 'U':
		n, err := strconv.ParseInt(code[1:], 16, 32)
		return rune(n), err
	case 'N':
		name := code[2 : len(code)-1]
		r, ok := namedRunes[name]
		if !ok {
			return 0, &ParseError{Message: "Unknown Unicode character name: " + name}
		}
		return r, nil
	default:
		n, err := strconv.ParseInt(code, 8, 32)
		return rune(n), err
	}
}
