package grimbound

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg/text"
)

// faceKey uniquely identifies a sized face by family name and size.
type faceKey struct {
	name string
	size float64
}

// FontLibrary holds registered font families and caches sized faces.
// Families are registered once up front; Face lookups during a batch
// then hit the cache.
type FontLibrary struct {
	mu      sync.RWMutex
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewFontLibrary creates an empty font library.
func NewFontLibrary() *FontLibrary {
	return &FontLibrary{
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
}

// Register parses font data and stores it under the given family
// name. Registering the same name again replaces the previous source
// and drops its cached faces.
func (fl *FontLibrary) Register(name string, data []byte) error {
	source, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	fl.put(name, source)
	return nil
}

// RegisterFile loads a font file and stores it under the given family
// name.
func (fl *FontLibrary) RegisterFile(name, path string) error {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("register font %q from %s: %w", name, path, err)
	}
	fl.put(name, source)
	return nil
}

func (fl *FontLibrary) put(name string, source *text.FontSource) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.sources[name] = source
	for k := range fl.faces {
		if k.name == name {
			delete(fl.faces, k)
		}
	}
}

// Face returns a cached face for the family at the given size,
// creating it on first use. Unknown families are an error so a typo
// in a style option surfaces at the first token, not as silently
// missing text.
func (fl *FontLibrary) Face(name string, size float64) (text.Face, error) {
	key := faceKey{name: name, size: size}

	fl.mu.RLock()
	if face, ok := fl.faces[key]; ok {
		fl.mu.RUnlock()
		return face, nil
	}
	source := fl.sources[name]
	fl.mu.RUnlock()

	if source == nil {
		return nil, fmt.Errorf("font %q not registered", name)
	}

	face := source.Face(size)
	fl.mu.Lock()
	fl.faces[key] = face
	fl.mu.Unlock()
	return face, nil
}

// Has reports whether a family is registered.
func (fl *FontLibrary) Has(name string) bool {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	_, ok := fl.sources[name]
	return ok
}

// Names returns the registered family names, sorted.
func (fl *FontLibrary) Names() []string {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	names := make([]string, 0, len(fl.sources))
	for name := range fl.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered families.
func (fl *FontLibrary) Len() int {
	fl.mu.RLock()
	defer fl.mu.RUnlock()
	return len(fl.sources)
}
