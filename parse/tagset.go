// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Declarative tag resolution: TagSet, TagDef, Attribute, and the
// algorithm that turns a parsed tag's raw positional/named arguments
// into a fully bound Tag.

package parse

// Suppress is the sentinel TagSet entry meaning "drop this tag and
// everything inside it." A TagSet binds a name to Suppress the same
// way the source binds a name to None: BuildTag still parses the
// tag's body (for well-formedness) but the parser discards the
// result.
var Suppress = &TagDef{suppress: true}

// DefaultFunc produces a default value for an attribute that the
// caller didn't supply, given the tag as built so far (so defaults
// can reference sibling attributes). A nil DefaultFunc means the
// attribute has no default: if the caller doesn't supply it, it's
// left unbound rather than bound to a placeholder.
type DefaultFunc func(*Tag) Value

// Attribute declares one named slot a TagDef expects. The name "..."
// is the conventional body slot: nothing in this package treats
// it specially, but tagset authors use it so the first positional
// argument reads naturally as the tag's body.
type Attribute struct {
	Name    string
	Default DefaultFunc
}

// Const returns a DefaultFunc that always produces the same value,
// the common case for an Attribute's default.
func Const(v Value) DefaultFunc {
	return func(*Tag) Value { return v }
}

// TagDef declares the shape of one tag name: its attributes in
// declaration order. The order matters because unclaimed positional
// arguments fill unbound attributes left-to-right.
type TagDef struct {
	Attrs []Attribute

	suppress bool
}

// TagSet maps tag names to their TagDef, standing in for the
// governing vocabulary a Snow document is parsed against. A name
// absent from the set resolves against an empty TagDef rather than
// failing; see BuildTag.
type TagSet map[string]*TagDef

// BuildTag resolves a tag's raw arguments against its TagDef,
// producing a fully bound Tag. args is a mix of positional values and
// (name, value) pairs supplied in source order, in the order the grammar
// parses them.
//
// Resolution, in order:
//  1. every named argument binds directly, by name;
//  2. remaining positional arguments fill declared attributes,
//     left-to-right, skipping ones already bound by name;
//  3. any declared attribute still unbound gets its default, if it
//     has one;
//  4. positional arguments left over after every declared attribute
//     is filled become Extra;
//  5. named arguments that don't match a declared attribute are
//     re-added as named, in the order supplied.
//
// A tag name absent from ts is not an error: it resolves against an
// empty TagDef, so every positional argument falls through to Extra
// and every named argument is re-added as named. A tag with
// no positional arguments at all is "Tags must have a name" (the
// parser always supplies the tag name as positional argument zero, so
// this only fires when that invariant is violated by a caller).
func (ts TagSet) BuildTag(args []Arg) (*Tag, *TagDef, error) {
	if len(args) == 0 || args[0].Name != "" {
		return nil, nil, &ParseError{Message: "Tags must have a name"}
	}
	name, err := args[0].Value.ToText()
	if err != nil {
		return nil, nil, &ParseError{Message: "Tag name must be text: " + err.Error()}
	}
	def, ok := ts[name.Value]
	if !ok {
		// An undeclared tag name isn't a parse error: it's built
		// against an empty TagDef, so every positional argument lands
		// in Extra and every named argument is kept as named.
		def = &TagDef{}
	}
	if def.suppress {
		return nil, def, nil
	}

	tag := newTag(name)
	rest := args[1:]

	// Collect named arguments into an ordered map first, merging
	// duplicate keys into a Section per the source-order rule, before
	// splitting them into declared vs. extra.
	var kwargOrder []string
	kwargs := make(map[string]Value)
	var positional []Value

	for _, a := range rest {
		if a.Name == "" {
			positional = append(positional, a.Value)
			continue
		}
		if existing, ok := kwargs[a.Name]; ok {
			if sec, isSec := existing.(Section); isSec {
				kwargs[a.Name] = Section{Items: append(append([]Value{}, sec.Items...), a.Value)}
			} else {
				kwargs[a.Name] = Section{Items: []Value{existing, a.Value}}
			}
			continue
		}
		kwargOrder = append(kwargOrder, a.Name)
		kwargs[a.Name] = a.Value
	}

	bound := make(map[string]bool, len(def.Attrs))
	var extraNamed []Arg

	for _, key := range kwargOrder {
		v := kwargs[key]
		if attrDeclared(def, key) {
			tag.set(Text{Value: key}, v)
			bound[key] = true
		} else {
			extraNamed = append(extraNamed, Arg{Name: key, Value: v})
		}
	}

	pi := 0
	for _, attr := range def.Attrs {
		if bound[attr.Name] {
			continue
		}
		if pi < len(positional) {
			tag.set(Text{Value: attr.Name}, positional[pi])
			bound[attr.Name] = true
			pi++
			continue
		}
		if attr.Default != nil {
			tag.set(Text{Value: attr.Name}, attr.Default(tag))
			bound[attr.Name] = true
		}
	}

	tag.Extra = append(tag.Extra, positional[pi:]...)
	for _, a := range extraNamed {
		tag.set(Text{Value: a.Name}, a.Value)
	}

	return tag, def, nil
}

func attrDeclared(def *TagDef, name string) bool {
	for _, a := range def.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Arg is one raw argument collected while parsing a tag's body:
// either positional (Name == "") or named.
type Arg struct {
	Name  string
	Value Value
}
