// Package assets loads and caches the bitmap resources token
// rendering consumes: backgrounds, portraits, and decorative
// overlays.
//
// The Loader resolves a resource identifier to bytes through a
// Resolver, decodes them (PNG, JPEG, GIF, or WebP), and keeps the
// decoded image for the life of the process or until Clear. Failures
// are never cached, so a transiently missing asset can succeed on a
// later batch. The cache is unbounded: a generation session touches
// each asset a handful of times and the working set is small.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"golang.org/x/sync/singleflight"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Resolver turns a resource identifier into raw image bytes. The
// batch core never performs network I/O itself; a Resolver backed by
// an HTTP cache or an embedded FS is supplied by the host.
type Resolver interface {
	Resolve(ctx context.Context, id string) ([]byte, error)
}

// FuncResolver adapts a function to the Resolver interface.
type FuncResolver func(ctx context.Context, id string) ([]byte, error)

// Resolve calls f.
func (f FuncResolver) Resolve(ctx context.Context, id string) ([]byte, error) {
	return f(ctx, id)
}

// Stats are cumulative cache counters, readable at any time.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Option configures a Loader during creation.
type Option func(*Loader)

// WithLogger sets the logger for load failures. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// Loader is a deduplicating, caching image loader keyed by resource
// identifier. Safe for concurrent use; concurrent loads of the same
// id are collapsed into one resolution.
type Loader struct {
	resolver Resolver
	log      *slog.Logger

	mu     sync.RWMutex
	images map[string]*gg.ImageBuf
	group  singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLoader creates a Loader that resolves identifiers through r.
func NewLoader(r Resolver, opts ...Option) *Loader {
	ld := &Loader{
		resolver: r,
		log:      slog.New(discardHandler{}),
		images:   make(map[string]*gg.ImageBuf),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Image returns the cached image for id, resolving and decoding it on
// first use. The returned buffer is shared: callers must treat it as
// read-only.
func (ld *Loader) Image(ctx context.Context, id string) (*gg.ImageBuf, error) {
	ld.mu.RLock()
	img, ok := ld.images[id]
	ld.mu.RUnlock()
	if ok {
		ld.hits.Add(1)
		return img, nil
	}
	ld.misses.Add(1)

	v, err, _ := ld.group.Do(id, func() (any, error) {
		// Re-check under the group: another caller may have stored it
		// between our read miss and entering the flight.
		ld.mu.RLock()
		img, ok := ld.images[id]
		ld.mu.RUnlock()
		if ok {
			return img, nil
		}

		data, err := ld.resolver.Resolve(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve image %q: %w", id, err)
		}
		decoded, format, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image %q: %w", id, err)
		}
		buf := gg.ImageBufFromImage(decoded)

		ld.mu.Lock()
		ld.images[id] = buf
		ld.mu.Unlock()

		ld.log.Debug("image cached", "id", id, "format", format)
		return buf, nil
	})
	if err != nil {
		ld.log.Warn("image load failed", "id", id, "error", err)
		return nil, err
	}
	return v.(*gg.ImageBuf), nil
}

// LocalImage loads an image from a local file path, cached under the
// path itself.
func (ld *Loader) LocalImage(path string) (*gg.ImageBuf, error) {
	ld.mu.RLock()
	img, ok := ld.images[path]
	ld.mu.RUnlock()
	if ok {
		ld.hits.Add(1)
		return img, nil
	}
	ld.misses.Add(1)

	v, err, _ := ld.group.Do(path, func() (any, error) {
		img, err := gg.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("load image %s: %w", path, err)
		}
		ld.mu.Lock()
		ld.images[path] = img
		ld.mu.Unlock()
		return img, nil
	})
	if err != nil {
		ld.log.Warn("image load failed", "path", path, "error", err)
		return nil, err
	}
	return v.(*gg.ImageBuf), nil
}

// Clear empties the cache. In-flight loads finish and store their
// results afterward.
func (ld *Loader) Clear() {
	ld.mu.Lock()
	ld.images = make(map[string]*gg.ImageBuf)
	ld.mu.Unlock()
}

// Len reports the number of cached images.
func (ld *Loader) Len() int {
	ld.mu.RLock()
	defer ld.mu.RUnlock()
	return len(ld.images)
}

// Stats returns cumulative hit and miss counters.
func (ld *Loader) Stats() Stats {
	return Stats{Hits: ld.hits.Load(), Misses: ld.misses.Load()}
}

// discardHandler is a slog.Handler that drops everything; Enabled
// returns false so formatting is skipped entirely.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
