package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeropress-app/create-zeropress-theme/internal/manifest"
)

// RewriteManifest replaces the name in target/theme.json. Every other field
// is kept as written in the template.
func RewriteManifest(target, name string) error {
	path := filepath.Join(target, manifest.ThemeFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrManifestRead, path, err)
	}

	doc, err := manifest.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrManifestParse, path, err)
	}

	if err := doc.Set("name", name); err != nil {
		return err
	}
	return manifest.WriteFile(path, doc)
}
