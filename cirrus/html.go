// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The HTML translator: a tree-walking visitor that renders a Cirrus
// Document to HTML via golang.org/x/net/html, following the visitor
// surface described by the parse package's Acceptor interface.
package cirrus

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/mohae/snow"
)

// ErrNoReadableContent is returned by Render when the document
// contains no tag to translate.
var ErrNoReadableContent = errors.New("cirrus: the document has no readable content")

// ErrDocNotAtRoot is returned by Render when a "doc" tag is
// encountered anywhere but the top of the walk.
var ErrDocNotAtRoot = errors.New("cirrus: a doc tag must only appear at the root of the document")

// visitor implements snow.Acceptor, translating each Value it's
// handed into the html.Node tree rooted at head/body. cur tracks the
// element new content is appended under; Accept saves and restores it
// around each recursive descent so siblings at the same depth append
// to the same parent.
type visitor struct {
	head *html.Node
	body *html.Node
	cur  *html.Node
}

func element(name string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: name, Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Accept implements snow.Acceptor.
func (v *visitor) Accept(val snow.Value) {
	saved := v.cur
	defer func() { v.cur = saved }()

	switch {
	case val.IsDocument():
		v.acceptDocument(val.(*snow.Document))
	case val.IsTag():
		v.acceptTag(val.(*snow.Tag))
	case val.IsSection():
		sec, _ := val.ToSection()
		for _, item := range sec.Items {
			item.Visit(v)
		}
	default:
		t, _ := val.ToText()
		v.cur.AppendChild(text(t.Value))
	}
}

func (v *visitor) acceptDocument(doc *snow.Document) {
	for _, item := range doc.Items {
		if item.IsTag() {
			item.Visit(v)
			return
		}
	}
	logger.Warn("the Cirrus document has no readable content")
	panic(ErrNoReadableContent)
}

func (v *visitor) acceptTag(tag *snow.Tag) {
	switch tag.Name.Value {
	case "doc":
		if t, ok := tag.Get("title"); ok {
			if txt, err := t.ToText(); err == nil && txt.Value != "" {
				title := element("title")
				title.AppendChild(text(txt.Value))
				v.head.AppendChild(title)
			}
		}
		if v.cur.Parent != nil {
			logger.Error("a doc tag appeared below the document root")
			panic(ErrDocNotAtRoot)
		}
		if body, ok := tag.Get("..."); ok {
			body.Visit(v)
		}
	case "bold":
		v.descend(tag, element("b"))
	case "italic":
		v.descend(tag, element("i"))
	case "underline":
		v.descend(tag, element("u"))
	case "link":
		href := tagURL(tag)
		v.descend(tag, element("a", html.Attribute{Key: "href", Val: href}))
	case "line":
		v.cur.AppendChild(element("br"))
		v.cur.AppendChild(text(""))
	case "image":
		v.cur.AppendChild(element("img", html.Attribute{Key: "src", Val: tagURL(tag)}))
	default:
		logger.Warnf("unexpected tag %q\n", tag.Name.Value)
		v.cur.AppendChild(element("div"))
	}
}

// descend appends el under the current element, then visits the
// tag's body slot with el as the new current element.
func (v *visitor) descend(tag *snow.Tag, el *html.Node) {
	v.cur.AppendChild(el)
	v.cur = el
	if body, ok := tag.Get("..."); ok {
		body.Visit(v)
	}
}

func tagURL(tag *snow.Tag) string {
	u, ok := tag.Get("url")
	if !ok {
		return ""
	}
	t, err := u.ToText()
	if err != nil {
		return ""
	}
	return t.Value
}

// Render translates doc to a serialized HTML document.
func Render(doc *snow.Document) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	head := element("head")
	body := element("body")
	v := &visitor{head: head, body: body, cur: body}
	doc.Visit(v)

	root := element("html")
	root.AppendChild(head)
	root.AppendChild(body)

	var buf bytes.Buffer
	if werr := html.Render(&buf, root); werr != nil {
		return "", fmt.Errorf("cirrus: rendering HTML: %w", werr)
	}
	return buf.String(), nil
}
