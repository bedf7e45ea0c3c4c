// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cirrus

import (
	"strings"
	"testing"

	"github.com/mohae/snow"
)

func render(t *testing.T, src string) string {
	t.Helper()
	doc, err := snow.Loads(TagSet, src)
	if err != nil {
		t.Fatalf("Loads(%q): %v", src, err)
	}
	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render(%q): %v", src, err)
	}
	return out
}

func TestRenderDocTitleAndBody(t *testing.T) {
	out := render(t, `{doc title:"Hello" [some text]}`)
	if !strings.Contains(out, "<title>Hello</title>") {
		t.Errorf("missing title, got %q", out)
	}
	if !strings.Contains(out, "some text") {
		t.Errorf("missing body text, got %q", out)
	}
}

func TestRenderDocDefaultTitle(t *testing.T) {
	out := render(t, `{doc [body]}`)
	if !strings.Contains(out, "<title>Cirrus</title>") {
		t.Errorf("expected default title, got %q", out)
	}
}

func TestRenderInlineMarkup(t *testing.T) {
	out := render(t, `{doc [{bold [strong]} and {italic [emph]} and {underline [line]}]}`)
	for _, want := range []string{"<b>strong</b>", "<i>emph</i>", "<u>line</u>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestRenderLink(t *testing.T) {
	out := render(t, `{doc [{link url:"http://example.com" [click]}]}`)
	if !strings.Contains(out, `href="http://example.com"`) {
		t.Errorf("missing href, got %q", out)
	}
	if !strings.Contains(out, ">click</a>") {
		t.Errorf("missing link text, got %q", out)
	}
}

func TestRenderImage(t *testing.T) {
	out := render(t, `{doc [{image url:"pic.png"}]}`)
	if !strings.Contains(out, `<img src="pic.png"`) {
		t.Errorf("missing img, got %q", out)
	}
}

func TestRenderLine(t *testing.T) {
	out := render(t, `{doc [a{line}b]}`)
	if !strings.Contains(out, "<br") {
		t.Errorf("missing br, got %q", out)
	}
}

func TestRenderUnknownTagIsWarningNotError(t *testing.T) {
	out := render(t, `{doc [{frobnicate [x]}]}`)
	if !strings.Contains(out, "<div") {
		t.Errorf("expected placeholder div for unknown tag, got %q", out)
	}
}

func TestRenderSuppressedTagDropped(t *testing.T) {
	out := render(t, `{doc [before{! a comment}after]}`)
	if strings.Contains(out, "comment") {
		t.Errorf("suppressed tag body leaked into output: %q", out)
	}
	if !strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Errorf("surrounding text missing: %q", out)
	}
}

func TestRenderNoReadableContent(t *testing.T) {
	doc, err := snow.Loads(TagSet, `just text, no tag`)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	if _, err := Render(doc); err != ErrNoReadableContent {
		t.Errorf("expected ErrNoReadableContent, got %v", err)
	}
}

func TestRenderDocNotAtRoot(t *testing.T) {
	doc, err := snow.Loads(TagSet, `{bold [{doc [nested]}]}`)
	if err != nil {
		t.Fatalf("Loads: %v", err)
	}
	if _, err := Render(doc); err != ErrDocNotAtRoot {
		t.Errorf("expected ErrDocNotAtRoot, got %v", err)
	}
}
