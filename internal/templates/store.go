package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed themes
var themesFS embed.FS

// BuiltinSource is the Source() of the embedded store.
const BuiltinSource = "built-in"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateInvalid  = errors.New("template is not a directory")
)

// ignorePatterns are skipped when a template tree is copied. They only ever
// match in on-disk stores, since the embedded tree never contains them.
var ignorePatterns = []string{
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/.git",
	"**/.git/**",
	"**/node_modules",
	"**/node_modules/**",
}

// Store resolves template identifiers to file trees.
type Store struct {
	fsys   fs.FS
	source string
}

// Embedded returns the store backed by the templates compiled into the binary.
func Embedded() *Store {
	sub, err := fs.Sub(themesFS, "themes")
	if err != nil {
		// "themes" is a fixed, valid path; fs.Sub cannot fail on it.
		panic(err)
	}
	return &Store{fsys: sub, source: BuiltinSource}
}

// Dir returns a store rooted at an on-disk directory. Each template is a
// subdirectory named after its identifier.
func Dir(root string) *Store {
	return &Store{fsys: os.DirFS(root), source: root}
}

// FromFS wraps an arbitrary filesystem laid out like the embedded store.
func FromFS(fsys fs.FS, source string) *Store {
	return &Store{fsys: fsys, source: source}
}

// Source describes where templates are read from.
func (s *Store) Source() string { return s.source }

// Open returns the file tree for template id.
func (s *Store) Open(id string) (fs.FS, error) {
	if id == "" || id == "." || !fs.ValidPath(id) || path.Base(id) != id {
		return nil, fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, id, s.source)
	}

	info, err := fs.Stat(s.fsys, id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, id, s.source)
		}
		return nil, fmt.Errorf("reading template %q: %w", id, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q in %s", ErrTemplateInvalid, id, s.source)
	}

	sub, err := fs.Sub(s.fsys, id)
	if err != nil {
		return nil, fmt.Errorf("opening template %q: %w", id, err)
	}
	return sub, nil
}

// Ignored reports whether a slash-separated path inside a template tree
// should be left out of a copy.
func Ignored(p string) bool {
	for _, pattern := range ignorePatterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}
	return false
}
