// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cirrus translates a constrained subset of Snow documents to
// HTML. TagSet declares the vocabulary; html.go walks a parsed
// Document against it.
package cirrus

import "github.com/mohae/snow"

// TagSet is the Cirrus vocabulary: doc, bold, italic, underline,
// link, line, image, and a suppressed "!" comment tag.
var TagSet = snow.TagSet{
	"doc": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "..."},
		{Name: "title", Default: snow.Const(snow.NewText("Cirrus"))},
	}},
	"bold": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "..."},
	}},
	"italic": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "..."},
	}},
	"underline": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "..."},
	}},
	"link": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "url", Default: snow.Const(snow.NewText(""))},
		{Name: "..."},
	}},
	"line": &snow.TagDef{},
	"image": &snow.TagDef{Attrs: []snow.Attribute{
		{Name: "url", Default: snow.Const(snow.NewText(""))},
	}},
	"!": snow.Suppress,
}
