package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zeropress-app/create-zeropress-theme/internal/templates"
)

// Progress receives per-entry notifications from CopyTemplate. Either
// callback may be nil.
type Progress struct {
	Copied  func(rel string)
	Skipped func(rel, reason string)
}

func (p Progress) copied(rel string) {
	if p.Copied != nil {
		p.Copied(rel)
	}
}

func (p Progress) skipped(rel, reason string) {
	if p.Skipped != nil {
		p.Skipped(rel, reason)
	}
}

// CopyTemplate recursively copies src into target. Ignored entries (editor
// and VCS droppings) are left out. Symlinks to regular files are copied as
// plain files; other symlinks and special files are skipped and reported.
// Files are written 0644 regardless of the source mode, since embedded files
// are read-only. It returns the slash-separated relative paths of the files
// written.
func CopyTemplate(src fs.FS, target string, progress Progress) ([]string, error) {
	var files []string

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if templates.Ignored(p) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		dst := filepath.Join(target, filepath.FromSlash(p))

		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := fs.Stat(src, p)
			if err != nil {
				progress.skipped(p, "broken symlink")
				return nil
			}
			if !info.Mode().IsRegular() {
				progress.skipped(p, "symlink to "+kindOf(info.Mode()))
				return nil
			}
		} else if !d.Type().IsRegular() {
			progress.skipped(p, kindOf(d.Type()))
			return nil
		}

		if err := copyFile(src, p, dst); err != nil {
			return err
		}
		files = append(files, p)
		progress.copied(p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copying template into %s: %w", target, err)
	}

	sort.Strings(files)
	return files, nil
}

func kindOf(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return "directory"
	case mode&fs.ModeNamedPipe != 0:
		return "named pipe"
	case mode&fs.ModeSocket != 0:
		return "socket"
	case mode&fs.ModeDevice != 0:
		return "device"
	default:
		return "special file"
	}
}

func copyFile(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
