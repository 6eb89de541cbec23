//go:build !tinygo

// Command mkfont compiles a TrueType or OpenType font into a Go file holding
// a ready font table.
//
//	mkfont -size 12 -ranges 20-7E,410-44F -pkg mono12 -out mono12/font.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"lcdgfx/font"
	"lcdgfx/fonts/facefont"
)

func main() {
	var (
		in        = flag.String("in", "", "Font file (.ttf or .otf); Go Mono when empty.")
		outPath   = flag.String("out", "", "Output Go file; stdout when empty.")
		size      = flag.Float64("size", 12, "Size in points.")
		dpi       = flag.Float64("dpi", 72, "Resolution in dots per inch.")
		ranges    = flag.String("ranges", "20-7E", "Comma separated hex codepoint ranges.")
		aa        = flag.Bool("aa", false, "Keep two bits of coverage per pixel.")
		threshold = flag.Uint("threshold", 128, "Coverage a plain pixel needs to be set (1-255).")
		pkg       = flag.String("pkg", "", "Package name of the generated file.")
		name      = flag.String("var", "Font", "Variable name of the generated font.")
	)
	flag.Parse()

	if *pkg == "" {
		fatalf("usage: mkfont -pkg name [-in font.ttf] [-size 12] [-ranges 20-7E,400-45F] [-aa] [-out file.go]")
	}
	if *threshold == 0 || *threshold > 255 {
		fatalf("threshold out of range: %d", *threshold)
	}
	rs, err := parseRanges(*ranges)
	if err != nil {
		fatalf("ranges: %v", err)
	}

	face, err := loadFace(*in, *size, *dpi)
	if err != nil {
		fatalf("font: %v", err)
	}
	defer face.Close()

	tab, err := facefont.Build(face, rs, facefont.Options{Antialiased: *aa, Threshold: uint8(*threshold)})
	if err != nil {
		fatalf("compile: %v", err)
	}
	// Reject tables the runtime would refuse before writing them out.
	if _, err := font.New(tab.Desc, tab.Data); err != nil {
		fatalf("compile: %v", err)
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		out = f
	}
	src := *in
	if src == "" {
		src = "Go Mono"
	}
	if err := generate(out, *pkg, *name, fmt.Sprintf("%s at %gpt", src, *size), tab); err != nil {
		fatalf("generate: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func loadFace(path string, size, dpi float64) (xfont.Face, error) {
	data := gomono.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: dpi, Hinting: xfont.HintingFull})
}

func parseRanges(s string) ([]font.Range, error) {
	var out []font.Range
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			hi = lo
		}
		first, err := strconv.ParseUint(lo, 16, 21)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		last, err := strconv.ParseUint(hi, 16, 21)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		if last < first {
			return nil, fmt.Errorf("%q: inverted range", part)
		}
		out = append(out, font.Range{First: rune(first), Last: rune(last)})
	}
	if len(out) == 0 {
		return nil, errors.New("no ranges")
	}
	return out, nil
}

// generate writes tab as a Go file declaring name in package pkg.
func generate(w io.Writer, pkg, name, source string, tab facefont.Table) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\nimport \"lcdgfx/font\"\n\n", pkg)
	fmt.Fprintf(&b, "var %s = font.MustNew(font.Desc{\n", name)
	b.WriteString("\tRanges: []font.Range{")
	for _, r := range tab.Desc.Ranges {
		fmt.Fprintf(&b, "{First: %#x, Last: %#x}, ", r.First, r.Last)
	}
	b.WriteString("},\n")
	fmt.Fprintf(&b, "\tHeight: %d,\n", tab.Desc.Height)
	if tab.Desc.Width > 0 {
		fmt.Fprintf(&b, "\tWidth: %d,\n", tab.Desc.Width)
	} else {
		b.WriteString("\tWidths: []uint8{")
		for _, v := range tab.Desc.Widths {
			fmt.Fprintf(&b, "%d, ", v)
		}
		b.WriteString("},\n\tOffsets: []uint16{")
		for _, v := range tab.Desc.Offsets {
			fmt.Fprintf(&b, "%d, ", v)
		}
		b.WriteString("},\n")
	}
	if tab.Desc.Antialiased {
		b.WriteString("\tAntialiased: true,\n")
	}
	b.WriteString("}, ")
	switch data := tab.Data.(type) {
	case []uint16:
		writeWords(&b, "uint16", data)
	case []uint32:
		writeWords(&b, "uint32", data)
	case []uint64:
		writeWords(&b, "uint64", data)
	default:
		return fmt.Errorf("unexpected table data %T", tab.Data)
	}
	b.WriteString(")\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func writeWords[W uint16 | uint32 | uint64](b *bytes.Buffer, typ string, words []W) {
	fmt.Fprintf(b, "[]%s{", typ)
	for i, v := range words {
		if i%8 == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%#x, ", uint64(v))
	}
	b.WriteString("\n}")
}
