// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The document model: the closed Value algebra (Text, Tag, Section,
// Document) and its discriminators/coercions.

package parse

import (
	"strconv"
	"strings"
)

// Acceptor is the visitor surface: a consumer walks a Document
// by implementing Accept and letting each Value's Visit call back
// into it.
type Acceptor interface {
	Accept(Value)
}

// Value is the closed sum of Text, Tag, and Section (Document is a
// tagged Section). Only types in this package implement it.
type Value interface {
	IsText() bool
	IsTag() bool
	IsSection() bool
	IsDocument() bool

	ToText() (Text, error)
	ToTag() (*Tag, error)
	ToSection() (Section, error)
	ToNumber() (Number, error)

	String() string
	Visit(Acceptor)
	Equal(Value) bool

	snowValue()
}

// Number is the result of a successful ToNumber coercion: either an
// integer (arbitrary base, see Text.ToNumber) or a float.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// Float64 returns the number as a float64 regardless of which branch
// produced it, for callers that don't care about the distinction.
func (n Number) Float64() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// Text is a Unicode string value: produced from quoted or unquoted
// literals, or from text runs inside sections and documents.
type Text struct {
	Value string
}

func NewText(s string) Text { return Text{Value: s} }

func (Text) snowValue()         {}
func (Text) IsText() bool       { return true }
func (Text) IsTag() bool        { return false }
func (Text) IsSection() bool    { return false }
func (Text) IsDocument() bool   { return false }
func (t Text) String() string   { return t.Value }
func (t Text) Visit(a Acceptor) { a.Accept(t) }

func (t Text) ToText() (Text, error) { return t, nil }

func (t Text) ToTag() (*Tag, error) {
	return nil, &ConversionError{From: "Text", To: "Tag", Why: "attempted to convert text to a tag"}
}

func (t Text) ToSection() (Section, error) {
	return Section{Items: []Value{t}}, nil
}

func (t Text) ToNumber() (Number, error) {
	m := reNumber.FindStringSubmatch(t.Value)
	if m == nil {
		return Number{}, &ConversionError{From: "Text", To: "Number", Why: "invalid number format: " + strconv.Quote(t.Value)}
	}
	// m[1] is the radix prefix (0b, 0, 0x) for the integer branch; if
	// the whole match also contains a '.' or 'e' it's the float branch.
	if strings.ContainsAny(m[0], ".eE") && m[1] == "" {
		f, err := strconv.ParseFloat(m[0], 64)
		if err != nil {
			return Number{}, &ConversionError{From: "Text", To: "Number", Why: err.Error()}
		}
		return Number{IsFloat: true, Float: f}, nil
	}
	base := 10
	digits := m[0]
	switch strings.ToLower(m[1]) {
	case "0b":
		base = 2
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "-"), "+")
		digits = digits[len(m[1]):]
	case "0x":
		base = 16
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "-"), "+")
		digits = digits[len(m[1]):]
	case "0":
		base = 8
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "-"), "+")
		digits = digits[len(m[1]):]
	default:
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "-"), "+")
	}
	neg := strings.HasPrefix(m[0], "-")
	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		// A digit run that isn't valid in its radix (e.g. "09" read as
		// octal) falls back to a float parse of the whole literal.
		f, ferr := strconv.ParseFloat(m[0], 64)
		if ferr != nil {
			return Number{}, &ConversionError{From: "Text", To: "Number", Why: err.Error()}
		}
		return Number{IsFloat: true, Float: f}, nil
	}
	if neg {
		n = -n
	}
	return Number{Int: n}, nil
}

func (t Text) Equal(v Value) bool {
	o, ok := v.(Text)
	return ok && o.Value == t.Value
}

// Section is a bracketed interleaving of Text and Tag values.
type Section struct {
	Items []Value
}

func NewSection(items ...Value) Section { return Section{Items: items} }

func (Section) snowValue()         {}
func (Section) IsText() bool       { return false }
func (Section) IsTag() bool        { return false }
func (Section) IsSection() bool    { return true }
func (Section) IsDocument() bool   { return false }
func (s Section) Visit(a Acceptor) { a.Accept(s) }

func (s Section) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, it := range s.Items {
		b.WriteString(it.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (s Section) ToText() (Text, error) {
	var b strings.Builder
	for _, it := range s.Items {
		t, err := it.ToText()
		if err != nil {
			return Text{}, err
		}
		b.WriteString(t.Value)
	}
	return Text{Value: b.String()}, nil
}

func (s Section) ToTag() (*Tag, error) {
	return nil, &ConversionError{From: "Section", To: "Tag", Why: "attempted to convert a section to a tag"}
}

func (s Section) ToSection() (Section, error) { return s, nil }

func (s Section) ToNumber() (Number, error) {
	t, err := s.ToText()
	if err != nil {
		return Number{}, err
	}
	return t.ToNumber()
}

func (s Section) Equal(v Value) bool {
	o, ok := v.(Section)
	if !ok || len(o.Items) != len(s.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// Document is a Section tagged with its origin (a filename or the
// sentinel "<string>"). It is never nested inside another value.
type Document struct {
	Section
	Src string
}

func NewDocument(src string, items ...Value) *Document {
	return &Document{Section: Section{Items: items}, Src: src}
}

func (*Document) IsDocument() bool   { return true }
func (d *Document) Visit(a Acceptor) { a.Accept(d) }

func (d *Document) String() string {
	return d.Section.String()
}

func (d *Document) Equal(v Value) bool {
	o, ok := v.(*Document)
	return ok && o.Src == d.Src && d.Section.Equal(o.Section)
}

// kv is one entry of a Tag's ordered named-attribute map.
type kv struct {
	Key Text
	Val Value
}

// Tag is a structured invocation identified by its first positional
// value. Named attributes preserve insertion order; positional
// overflow lands in Extra.
type Tag struct {
	Name  Text
	Extra []Value

	order []kv
	index map[string]int // key.Value -> index in order
}

func newTag(name Text) *Tag {
	return &Tag{Name: name, index: make(map[string]int)}
}

func (*Tag) snowValue()       {}
func (*Tag) IsText() bool     { return false }
func (*Tag) IsTag() bool      { return true }
func (*Tag) IsSection() bool  { return false }
func (*Tag) IsDocument() bool { return false }

func (t *Tag) Visit(a Acceptor) { a.Accept(t) }

func (t *Tag) ToText() (Text, error) {
	return Text{}, &ConversionError{From: "Tag", To: "Text", Why: "attempted to convert a tag to text"}
}

func (t *Tag) ToTag() (*Tag, error) { return t, nil }

func (t *Tag) ToSection() (Section, error) {
	return Section{}, &ConversionError{From: "Tag", To: "Section", Why: "attempted to convert a tag to a section"}
}

func (t *Tag) ToNumber() (Number, error) {
	return Number{}, &ConversionError{From: "Tag", To: "Number", Why: "attempted to convert a tag to a number"}
}

func (t *Tag) String() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(t.Name.Value)
	for _, e := range t.order {
		b.WriteByte(' ')
		b.WriteString(e.Key.Value)
		b.WriteByte(':')
		b.WriteString(e.Val.String())
	}
	for _, e := range t.Extra {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	b.WriteByte('}')
	return b.String()
}

// set binds key to val, appending to the insertion order if key is
// new or overwriting in place if it already exists.
func (t *Tag) set(key Text, val Value) {
	if i, ok := t.index[key.Value]; ok {
		t.order[i].Val = val
		return
	}
	t.index[key.Value] = len(t.order)
	t.order = append(t.order, kv{Key: key, Val: val})
}

// has reports whether key is already bound.
func (t *Tag) has(key Text) bool {
	_, ok := t.index[key.Value]
	return ok
}

// Lookup returns the value bound to a Text key, including any
// default that was injected during parsing.
func (t *Tag) Lookup(key Text) (Value, bool) {
	i, ok := t.index[key.Value]
	if !ok {
		return nil, false
	}
	return t.order[i].Val, true
}

// Get is the string-keyed equivalent of Lookup: looking a named
// attribute up by string or by Text key is interchangeable.
func (t *Tag) Get(key string) (Value, bool) {
	return t.Lookup(Text{Value: key})
}

// Named iterates the tag's named attributes in insertion order.
func (t *Tag) Named() []struct {
	Key Text
	Val Value
} {
	out := make([]struct {
		Key Text
		Val Value
	}, len(t.order))
	for i, e := range t.order {
		out[i] = struct {
			Key Text
			Val Value
		}{Key: e.Key, Val: e.Val}
	}
	return out
}

func (t *Tag) Equal(v Value) bool {
	o, ok := v.(*Tag)
	if !ok || !t.Name.Equal(o.Name) || len(t.order) != len(o.order) || len(t.Extra) != len(o.Extra) {
		return false
	}
	for i := range t.order {
		if t.order[i].Key.Value != o.order[i].Key.Value || !t.order[i].Val.Equal(o.order[i].Val) {
			return false
		}
	}
	for i := range t.Extra {
		if !t.Extra[i].Equal(o.Extra[i]) {
			return false
		}
	}
	return true
}
