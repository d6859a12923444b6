package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xa0
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

func TestLoader_ImageCachesResult(t *testing.T) {
	data := testPNG(t, 8, 8)
	var calls atomic.Int32
	loader := NewLoader(FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		calls.Add(1)
		return data, nil
	}))

	ctx := context.Background()
	first, err := loader.Image(ctx, "bg")
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	second, err := loader.Image(ctx, "bg")
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	if first != second {
		t.Error("cache hit should return the stored handle")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("resolver called %d times, want 1", got)
	}
	if loader.Len() != 1 {
		t.Errorf("Len() = %d, want 1", loader.Len())
	}

	stats := loader.Stats()
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("Stats = %+v, want 1 hit / 1 miss", stats)
	}
}

// Failures are not cached: a resource that becomes available succeeds
// on the next request.
func TestLoader_FailureNotCached(t *testing.T) {
	data := testPNG(t, 4, 4)
	var calls atomic.Int32
	loader := NewLoader(FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("temporarily unavailable")
		}
		return data, nil
	}))

	ctx := context.Background()
	if _, err := loader.Image(ctx, "flaky"); err == nil {
		t.Fatal("first load should fail")
	}
	if loader.Len() != 0 {
		t.Error("failed load must not be cached")
	}

	img, err := loader.Image(ctx, "flaky")
	if err != nil {
		t.Fatalf("second load should succeed: %v", err)
	}
	if img == nil {
		t.Fatal("nil image after successful load")
	}
}

func TestLoader_DecodeError(t *testing.T) {
	loader := NewLoader(FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		return []byte("definitely not an image"), nil
	}))

	if _, err := loader.Image(context.Background(), "junk"); err == nil {
		t.Error("undecodable bytes should fail")
	}
	if loader.Len() != 0 {
		t.Error("decode failure must not be cached")
	}
}

func TestLoader_Clear(t *testing.T) {
	loader := NewLoader(FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		return testPNG(t, 4, 4), nil
	}))

	if _, err := loader.Image(context.Background(), "a"); err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	loader.Clear()
	if loader.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", loader.Len())
	}
}

func TestLoader_LocalImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(path, testPNG(t, 6, 6), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	loader := NewLoader(FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		return nil, errors.New("unused")
	}))

	first, err := loader.LocalImage(path)
	if err != nil {
		t.Fatalf("LocalImage failed: %v", err)
	}
	second, err := loader.LocalImage(path)
	if err != nil {
		t.Fatalf("LocalImage failed: %v", err)
	}
	if first != second {
		t.Error("LocalImage should cache by path")
	}

	if _, err := loader.LocalImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestDirResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	data := []byte("fake bytes")
	if err := os.WriteFile(filepath.Join(dir, "bg.png"), data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	d := DirResolver{Root: dir}
	ctx := context.Background()

	// Exact name with extension.
	got, err := d.Resolve(ctx, "bg.png")
	if err != nil {
		t.Fatalf("Resolve with extension failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("wrong bytes for bg.png")
	}

	// Extension probing.
	got, err = d.Resolve(ctx, "bg")
	if err != nil {
		t.Fatalf("Resolve without extension failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("wrong bytes for bg")
	}

	if _, err := d.Resolve(ctx, "nope"); err == nil {
		t.Error("unknown id should fail")
	}
}

func TestDirResolver_RejectsEscape(t *testing.T) {
	d := DirResolver{Root: t.TempDir()}
	for _, id := range []string{"../secret", "../../etc/passwd", "/abs/path"} {
		if _, err := d.Resolve(context.Background(), id); err == nil {
			t.Errorf("Resolve(%q) should fail", id)
		}
	}
}

func TestFuncResolver(t *testing.T) {
	want := []byte{1, 2, 3}
	r := FuncResolver(func(_ context.Context, id string) ([]byte, error) {
		if id != "x" {
			return nil, fmt.Errorf("unexpected id %q", id)
		}
		return want, nil
	})
	got, err := r.Resolve(context.Background(), "x")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("wrong bytes")
	}
}
