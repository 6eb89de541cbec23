//go:build !tinygo

// Command mkimage converts PNG, JPEG, GIF, BMP and TIFF files into raw
// little-endian RGB565 rows that devices stream with resource.NewStream. The
// size goes into the output name: logo.png becomes logo_64x32.rgb565. Given
// a directory it converts every image below it, mirroring the tree.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lcdgfx/resource"
)

const ext = ".rgb565"

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true,
}

func main() {
	var (
		src    string
		out    string
		width  int
		height int
	)
	flag.StringVar(&src, "src", "", "Image file or directory of images.")
	flag.StringVar(&out, "out", "", "Output file, or directory when -src is a directory.")
	flag.IntVar(&width, "width", 320, "Maximum width; images are scaled to fit.")
	flag.IntVar(&height, "height", 320, "Maximum height; images are scaled to fit.")
	flag.Parse()

	if src == "" || out == "" {
		fmt.Fprintln(os.Stderr, "error: -src and -out are required")
		os.Exit(2)
	}
	if width <= 0 || height <= 0 || width > 0x7FFF || height > 0x7FFF {
		fmt.Fprintf(os.Stderr, "error: invalid size %dx%d\n", width, height)
		os.Exit(2)
	}

	if err := run(src, out, width, height); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(src, out string, width, height int) error {
	src = filepath.Clean(src)
	st, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat src %q: %w", src, err)
	}
	if !st.IsDir() {
		_, err := convert(src, strings.TrimSuffix(out, ext), width, height)
		return err
	}

	var files []string
	walkErr := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() || !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("walk src %q: %w", src, walkErr)
	}
	sort.Strings(files)

	for _, rel := range files {
		dst := filepath.Join(out, strings.TrimSuffix(rel, filepath.Ext(rel)))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if _, err := convert(filepath.Join(src, rel), dst, width, height); err != nil {
			return err
		}
	}
	return nil
}

// convert writes src scaled to fit width x height to base_WxH.rgb565 and
// returns that path.
func convert(src, base string, width, height int) (string, error) {
	m, err := resource.Load(src, width, height)
	if err != nil {
		return "", fmt.Errorf("load %q: %w", src, err)
	}
	w, h := m.Size()
	dst := fmt.Sprintf("%s_%dx%d%s", base, w, h, ext)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if err := resource.Encode(f, m); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %q: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %q: %w", dst, err)
	}
	fmt.Printf("%s -> %s\n", src, dst)
	return dst, nil
}
