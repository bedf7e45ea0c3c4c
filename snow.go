// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snow is a thin façade over parse: it re-exports the Value
// algebra and tagset types so callers don't need to import the
// subpackage directly, and exposes the two parsing entry points.
package snow

import "github.com/mohae/snow/parse"

type (
	// Value is the closed sum of Text, Tag, and Section; Document is a
	// tagged Section.
	Value = parse.Value
	Text  = parse.Text
	Tag   = parse.Tag
	// Section is a bracketed interleaving of Text and Tag values.
	Section = parse.Section
	// Document is the root of a parsed Snow source.
	Document = parse.Document
	// Number is the result of a successful ToNumber coercion.
	Number = parse.Number

	// TagDef, Attribute, and TagSet declare the vocabulary a document
	// is parsed against.
	TagDef      = parse.TagDef
	Attribute   = parse.Attribute
	TagSet      = parse.TagSet
	DefaultFunc = parse.DefaultFunc

	// Acceptor is the visitor surface: Value.Visit(a) calls a.Accept(v).
	Acceptor = parse.Acceptor

	ParseError      = parse.ParseError
	ConversionError = parse.ConversionError

	NamedReader = parse.NamedReader
)

// Suppress is the TagSet sentinel meaning "drop this tag."
var Suppress = parse.Suppress

// Const is a convenience DefaultFunc that always returns the same value.
func Const(v Value) DefaultFunc { return parse.Const(v) }

// NewText builds a Text value.
func NewText(s string) Text { return parse.NewText(s) }

// NewSection builds a Section from its items.
func NewSection(items ...Value) Section { return parse.NewSection(items...) }

// NewDocument builds a Document, primarily useful in tests that need
// to construct an expected tree to compare against a parsed one.
func NewDocument(src string, items ...Value) *Document {
	return parse.NewDocument(src, items...)
}

// Load reads r fully and parses it against ts, recording r's Name()
// as the resulting Document's source.
func Load(ts TagSet, r NamedReader) (*Document, error) {
	return parse.Load(ts, r)
}

// Loads parses text against ts, recording the conventional
// "<string>" source name.
func Loads(ts TagSet, text string) (*Document, error) {
	return parse.Loads(ts, text)
}
