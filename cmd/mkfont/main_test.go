//go:build !tinygo

package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"lcdgfx/font"
	"lcdgfx/fonts/facefont"
)

func TestParseRanges(t *testing.T) {
	rs, err := parseRanges("20-7E, 410-44F,2588")
	if err != nil {
		t.Fatalf("parseRanges: %v", err)
	}
	want := []font.Range{{First: 0x20, Last: 0x7E}, {First: 0x410, Last: 0x44F}, {First: 0x2588, Last: 0x2588}}
	if len(rs) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(rs))
	}
	for i := range want {
		if rs[i] != want[i] {
			t.Fatalf("range %d: expected %v, got %v", i, want[i], rs[i])
		}
	}
	for _, bad := range []string{"", "7E-20", "zz", "20-"} {
		if _, err := parseRanges(bad); err == nil {
			t.Fatalf("%q: expected an error", bad)
		}
	}
}

func TestGenerate(t *testing.T) {
	tab, err := facefont.Build(basicfont.Face7x13, []font.Range{{First: 'A', Last: 'C'}}, facefont.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var b bytes.Buffer
	if err := generate(&b, "abc", "ABC", "basic", tab); err != nil {
		t.Fatalf("generate: %v", err)
	}
	src := b.String()
	for _, want := range []string{"package abc", "var ABC = font.MustNew(", "Width:", "[]uint16{"} {
		if !strings.Contains(src, want) {
			t.Fatalf("generated source lacks %q:\n%s", want, src)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "font.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
}

func TestLoadDefaultFace(t *testing.T) {
	face, err := loadFace("", 12, 72)
	if err != nil {
		t.Fatalf("loadFace: %v", err)
	}
	defer face.Close()
	f, err := facefont.Compile(face, []font.Range{{First: 0x20, Last: 0x7E}}, facefont.Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !f.IsFixedWidth() || f.CalculateLength("MM") <= 0 {
		t.Fatal("expected a fixed-width face")
	}
}
