// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The recursive-descent parser: ties the cursor, lexical patterns,
// value algebra, and tagset together into Load/Loads.
//
// There is no error recovery: the first failure aborts the whole
// parse. Internal methods fail by panicking with a *ParseError; the
// two entry points are the only places that recover, converting the
// panic back into a returned error, keeping the error path out of
// every recursive-descent method's return signature.

package parse

import (
	"io"
	"regexp"
	"runtime"
	"strings"
)

// parser holds the cursor and the governing tagset for one parse.
type parser struct {
	*cursor
	ts TagSet
}

func newParser(text string, ts TagSet) *parser {
	return &parser{cursor: newCursor(text), ts: ts}
}

// errorf fails the parse with a positioned ParseError.
func (p *parser) errorf(msg string, line, col int) {
	logger.Debugf("parse error at %d:%d: %s\n", line, col, msg)
	panic(&ParseError{Message: msg, Line: line, Col: col})
}

// recoverParse is deferred by the entry points to turn a panicking
// *ParseError (or *ConversionError) back into a returned error. A
// runtime panic (nil pointer, index out of range, ...) is not ours to
// swallow and is re-raised.
func recoverParse(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if _, ok := e.(runtime.Error); ok {
		panic(e)
	}
	if err, ok := e.(error); ok {
		*errp = err
		return
	}
	panic(e)
}

// NamedReader is satisfied by *os.File: something Load can read from
// and attribute to a Document's Src field.
type NamedReader interface {
	io.Reader
	Name() string
}

// Load reads r fully, parses it against ts, and records r's Name() as
// the resulting Document's source.
func Load(ts TagSet, r NamedReader) (doc *Document, err error) {
	data, rerr := io.ReadAll(r)
	if rerr != nil {
		return nil, rerr
	}
	return parseDocument(ts, string(data), r.Name())
}

// Loads parses text against ts, recording the conventional "<string>"
// source name.
func Loads(ts TagSet, text string) (doc *Document, err error) {
	return parseDocument(ts, text, "<string>")
}

func parseDocument(ts TagSet, text, src string) (doc *Document, err error) {
	defer recoverParse(&err)
	p := newParser(text, ts)
	items := p.parseRegion(reDocText, false)
	return &Document{Section: Section{Items: items}, Src: src}, nil
}

// parseRegion consumes an interleaving of text runs and tags, per the
// document/section production: `pattern? ( tag pattern? )*`. collapse
// applies the \{ \] literal-collapse that only section bodies get
// (section bodies collapse it, the top-level document never does).
func (p *parser) parseRegion(textPattern *regexp.Regexp, collapse bool) []Value {
	var items []Value
	for {
		matchedText := false
		if m, ok := p.maybe(textPattern); ok && m != "" {
			s := normalizeNewlines(m)
			if collapse {
				s = collapseEscapes(s)
			}
			items = append(items, Text{Value: s})
			matchedText = true
		}
		val, matchedTag := p.parseTag()
		if matchedTag && val != nil {
			items = append(items, val)
		}
		if !matchedText && !matchedTag {
			break
		}
	}
	return items
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func collapseEscapes(s string) string {
	s = strings.ReplaceAll(s, `\{`, "{")
	return strings.ReplaceAll(s, `\]`, "]")
}

// parseSection consumes a bracketed `[ ... ]` region, or reports no
// match if the next token isn't `[`.
func (p *parser) parseSection() (Section, bool) {
	if _, ok := p.maybe(reOpenBrack); !ok {
		return Section{}, false
	}
	items := p.parseRegion(reNotagText, true)
	if _, err := p.expect(reCloseBrack, "]"); err != nil {
		panic(err)
	}
	p.maybe(reWhitespace)
	return Section{Items: items}, true
}

// parseTag consumes a `{ ... }` tag, or reports no match if the next
// token isn't `{`. A tag bound to the suppress sentinel matches
// syntactically (the second return is true) but yields a nil Value:
// callers must drop it from whatever list they're building, exactly
// as an absent list element.
func (p *parser) parseTag() (Value, bool) {
	if _, ok := p.maybe(reOpenBrace); !ok {
		return nil, false
	}
	logger.Debugf("parseTag: entering at %d:%d\n", p.line, p.col)
	p.maybe(reWhitespace)

	var args []Arg
	for {
		if _, ok := p.maybe(reCloseBrace); ok {
			break
		}
		val := p.parseValue()
		p.maybe(reWhitespace)
		colonAt := p.pos
		if _, ok := p.maybe(reColon); ok {
			p.lastrel = colonAt
			p.maybe(reWhitespace)
			dat := p.parseValue()
			key, err := val.ToText()
			if err != nil {
				p.errorf("Named attribute key must be text: "+err.Error(), p.line, p.col)
			}
			args = append(args, Arg{Name: key.Value, Value: dat})
		} else {
			args = append(args, Arg{Value: val})
		}
		p.maybe(reWhitespace)
	}

	tag, def, err := p.ts.BuildTag(args)
	if err != nil {
		panic(err)
	}
	if def.suppress {
		logger.Debugf("parseTag: suppressed %q\n", args[0].Value.String())
		return nil, true
	}
	return tag, true
}

// parseValue consumes one value: a string, an unquoted name, a tag,
// or a section, in that priority order. If none match, it diagnoses
// why by checking, in order, for EOF, an unterminated quote, a stray
// close bracket, a stray close brace (missing value after ':'), a
// disallowed control character, and a parser-bug whitespace case,
// falling back to a generic "something went horribly wrong".
func (p *parser) parseValue() Value {
	if v, ok := p.tryString(); ok {
		return v
	}
	if m, ok := p.maybe(reName); ok {
		return Text{Value: unescapeName(m)}
	}
	if v, matched := p.parseTag(); matched {
		if v != nil {
			return v
		}
		// A suppressed tag was consumed but yields no value; fall
		// through to the remaining alternatives and, most likely, the
		// diagnostic chain below — a suppressed tag isn't a valid
		// value any more than it matched one of the other forms.
	}
	if v, ok := p.parseSection(); ok {
		return v
	}

	if p.atEOF() {
		p.errorf("Reached end of string/file while parsing a tag.", p.line, p.col)
	}
	if m, ok := p.maybe(reQuote); ok {
		p.errorf("Missing terminating "+m[len(m)-1:]+" character", p.line, p.col)
	}
	if _, ok := p.maybe(reCloseBrack); ok {
		p.errorf("Unexpected close bracket ]. Did you forget to close a tag?", p.line, p.col-1)
	}
	if _, ok := p.maybe(reCloseBrace); ok {
		line, col := p.lastrelPosition()
		p.errorf("Forgot to assign a value to the named attribute.", line, col)
	}
	if _, ok := p.maybe(reControl); ok {
		p.errorf("Control characters are disallowed in unquoted text.", p.line, p.col-1)
	}
	if m, ok := p.maybe(reWhitespace); ok {
		p.errorf("Expected a value, found whitespace. There's a problem with the API's parser code.", p.line, p.col-len(m))
	}

	snippet := p.text[p.pos:]
	if len(snippet) > 8 {
		snippet = snippet[:8] + "..."
	}
	panic(&ParseError{Message: `Something went horribly wrong. Expected value, got "` + snippet + `"`, Line: p.line, Col: p.col})
}

// tryString matches the optional-raw quoted-literal production and
// applies escape processing unless the raw prefix is present.
func (p *parser) tryString() (Value, bool) {
	rest := p.text[p.pos:]
	loc := reString.FindStringSubmatchIndex(rest)
	if loc == nil {
		return nil, false
	}
	group := func(i int) (string, bool) {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			return "", false
		}
		return rest[s:e], true
	}
	whole := rest[loc[0]:loc[1]]
	_, raw := group(1)
	var body string
	if b, ok := group(2); ok {
		body = b
	} else if b, ok := group(3); ok {
		body = b
	} else if b, ok := group(4); ok {
		body = b
	}
	p.advance(whole)
	if raw {
		return Text{Value: body}, true
	}
	unescaped, err := unescape(body)
	if err != nil {
		panic(err)
	}
	return Text{Value: unescaped}, true
}

// unescapeName drops the backslash of each escape in an unquoted name
// and keeps the escaped character verbatim, so that e.g. a literal
// colon can appear in a name as \:. The string-literal substitutions
// (\n, \t, \xHH, ...) are not applied: \n in a name yields "n".
func unescapeName(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
