package grimbound

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/Phauks/Grimbound-sub005/assets"
)

// findTestFont returns a path to a system font suitable for testing.
// Returns empty string if no font is found.
func findTestFont() string {
	candidates := []string{
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		// macOS
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Monaco.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// testFonts builds a FontLibrary with the default style's families
// all backed by a system font, skipping the test when none exists.
func testFonts(t *testing.T) *FontLibrary {
	t.Helper()
	path := findTestFont()
	if path == "" {
		t.Skip("No system font available")
	}
	fonts := NewFontLibrary()
	for _, family := range []string{"Dumbledor", "TradeGothic"} {
		if err := fonts.RegisterFile(family, path); err != nil {
			t.Fatalf("RegisterFile(%q) failed: %v", family, err)
		}
	}
	return fonts
}

// pngBytes encodes a small solid-color PNG for resolver fixtures.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

// mapResolver serves fixture bytes by id and fails on anything else.
type mapResolver map[string][]byte

func (m mapResolver) Resolve(_ context.Context, id string) ([]byte, error) {
	data, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("no fixture for %q", id)
	}
	return data, nil
}

// testRenderer builds a renderer whose loader serves the given
// fixtures; every other asset id fails to resolve and exercises the
// degraded paths.
func testRenderer(t *testing.T, fixtures mapResolver, opts ...Option) *Renderer {
	t.Helper()
	loader := assets.NewLoader(fixtures)
	r, err := NewRenderer(loader, testFonts(t), opts...)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	return r
}
