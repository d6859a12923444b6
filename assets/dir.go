package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirResolver resolves identifiers to files under Root. An identifier
// maps to "<Root>/<id><ext>", trying each known image extension when
// the id has none.
type DirResolver struct {
	Root string
}

// imageExts are tried in order when an identifier has no extension.
var imageExts = []string{".png", ".webp", ".jpg", ".jpeg", ".gif"}

// Resolve reads the file for id. Identifiers may not escape Root.
func (d DirResolver) Resolve(_ context.Context, id string) ([]byte, error) {
	clean := filepath.Clean(id)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("asset id %q escapes root", id)
	}

	if filepath.Ext(clean) != "" {
		return os.ReadFile(filepath.Join(d.Root, clean))
	}

	var firstErr error
	for _, ext := range imageExts {
		data, err := os.ReadFile(filepath.Join(d.Root, clean+ext))
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, fmt.Errorf("asset %q not found under %s: %w", id, d.Root, firstErr)
}
