// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadsScenarioPlainText(t *testing.T) {
	doc, err := Loads(TagSet{}, "hello")
	require.NoError(t, err)
	require.Equal(t, "<string>", doc.Src)
	require.Equal(t, []Value{Text{Value: "hello"}}, doc.Items)
}

func TestLoadsScenarioNamedAttribute(t *testing.T) {
	ts := TagSet{"b": &TagDef{Attrs: []Attribute{{Name: "body"}}}}
	doc, err := Loads(ts, "{b foo}")
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	require.Equal(t, "b", tag.Name.Value)
	body, ok := tag.Get("body")
	require.True(t, ok)
	require.Equal(t, Text{Value: "foo"}, body)
	require.Empty(t, tag.Extra)
}

func TestLoadsScenarioDuplicateNamedAttributes(t *testing.T) {
	ts := TagSet{"b": &TagDef{Attrs: []Attribute{{Name: "body"}}}}
	doc, err := Loads(ts, `{b body:"x" body:"y"}`)
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	body, ok := tag.Get("body")
	require.True(t, ok)
	require.Equal(t, Section{Items: []Value{Text{Value: "x"}, Text{Value: "y"}}}, body)
}

func TestLoadsScenarioPositionalFillAndExtra(t *testing.T) {
	ts := TagSet{"b": &TagDef{Attrs: []Attribute{{Name: "a"}, {Name: "c"}}}}
	doc, err := Loads(ts, "{b 1 2 3}")
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	a, _ := tag.Get("a")
	c, _ := tag.Get("c")
	require.Equal(t, Text{Value: "1"}, a)
	require.Equal(t, Text{Value: "2"}, c)
	require.Equal(t, []Value{Text{Value: "3"}}, tag.Extra)
}

func TestLoadsScenarioSuppressedTagOmitted(t *testing.T) {
	ts := TagSet{"!": Suppress}
	doc, err := Loads(ts, "{! anything }")
	require.NoError(t, err)
	require.Empty(t, doc.Items)
}

func TestLoadsScenarioUnterminatedQuote(t *testing.T) {
	// At the top level a quote is plain document text, so the
	// unterminated literal is placed where a value is expected.
	_, err := Loads(TagSet{}, `{"unterminated}`)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 1, pe.Line)
	require.Contains(t, pe.Message, `Missing terminating " character`)
}

func TestLoadsScenarioMissingNamedValue(t *testing.T) {
	_, err := Loads(TagSet{"a": &TagDef{}}, "{a :}")
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Contains(t, pe.Message, "Forgot to assign a value to the named attribute.")
}

func TestLoadsScenarioSectionInsideTagArgument(t *testing.T) {
	ts := TagSet{
		"x": &TagDef{},
		"y": &TagDef{Attrs: []Attribute{{Name: "..."}}},
	}
	doc, err := Loads(ts, "{y [pre {x} post]}")
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	body, ok := tag.Get("...")
	require.True(t, ok)
	sec, err := body.ToSection()
	require.NoError(t, err)
	require.Len(t, sec.Items, 3)
	require.Equal(t, Text{Value: "pre "}, sec.Items[0])
	require.Equal(t, Text{Value: " post"}, sec.Items[2])
	inner, err := sec.Items[1].ToTag()
	require.NoError(t, err)
	require.Equal(t, "x", inner.Name.Value)
	require.Empty(t, inner.Extra)
}

func TestLoadsPlainTextRoundtrip(t *testing.T) {
	// Any text free of the five special characters parses to a
	// single Text item.
	in := "the quick brown fox jumps over 12 lazy dogs!"
	doc, err := Loads(TagSet{}, in)
	require.NoError(t, err)
	require.Equal(t, []Value{Text{Value: in}}, doc.Items)
}

func TestLoadsQuoteStylesAgree(t *testing.T) {
	ts := TagSet{"t": &TagDef{Attrs: []Attribute{{Name: "v"}}}}
	for _, q := range []string{`"hi"`, `'hi'`, "`hi`"} {
		doc, err := Loads(ts, "{t v:"+q+"}")
		require.NoError(t, err)
		tag, err := doc.Items[0].ToTag()
		require.NoError(t, err)
		v, ok := tag.Get("v")
		require.True(t, ok)
		require.Equal(t, Text{Value: "hi"}, v)
	}
}

func TestLoadsDeclaredAttributeAlwaysPresent(t *testing.T) {
	ts := TagSet{"t": &TagDef{Attrs: []Attribute{
		{Name: "given"},
		{Name: "defaulted", Default: Const(Text{Value: "fallback"})},
	}}}
	doc, err := Loads(ts, `{t 1}`)
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	given, ok := tag.Get("given")
	require.True(t, ok)
	require.Equal(t, Text{Value: "1"}, given)
	def, ok := tag.Get("defaulted")
	require.True(t, ok)
	require.Equal(t, Text{Value: "fallback"}, def)
}

func TestLoadsStrayCloseBracket(t *testing.T) {
	_, err := Loads(TagSet{"y": &TagDef{Attrs: []Attribute{{Name: "..."}}}}, "{y ]}")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "close bracket"))
}

func TestLoadsEscapeSequencesInQuotedString(t *testing.T) {
	ts := TagSet{"t": &TagDef{Attrs: []Attribute{{Name: "v"}}}}
	doc, err := Loads(ts, `{t v:"line1\nline2\tA"}`)
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	v, _ := tag.Get("v")
	require.Equal(t, Text{Value: "line1\nline2\tA"}, v)
}

func TestLoadsRawStringSkipsEscapeProcessing(t *testing.T) {
	ts := TagSet{"t": &TagDef{Attrs: []Attribute{{Name: "v"}}}}
	doc, err := Loads(ts, `{t v:r"raw\nstring"}`)
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	v, _ := tag.Get("v")
	require.Equal(t, Text{Value: `raw\nstring`}, v)
}

func TestLoadMalformedEscapeLeftUntouched(t *testing.T) {
	// \q isn't a recognized escape, so it and its backslash pass
	// through unchanged rather than erroring.
	ts := TagSet{"t": &TagDef{Attrs: []Attribute{{Name: "v"}}}}
	doc, err := Loads(ts, `{t v:"a\qb"}`)
	require.NoError(t, err)
	tag, err := doc.Items[0].ToTag()
	require.NoError(t, err)
	v, _ := tag.Get("v")
	require.Equal(t, Text{Value: `a\qb`}, v)
}
