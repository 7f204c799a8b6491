package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zeropress-app/create-zeropress-theme/internal/branding"
	"github.com/zeropress-app/create-zeropress-theme/internal/invocation"
	"github.com/zeropress-app/create-zeropress-theme/internal/manifest"
	"github.com/zeropress-app/create-zeropress-theme/internal/templates"
)

// Options tune a Generate run. The zero value uses the built-in templates.
type Options struct {
	Store     *templates.Store // nil means templates.Embedded()
	ThemeTool string           // "" means branding.ThemeTool()
	Progress  Progress         // per-file copy notifications
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string   // absolute path of the theme directory
	Template  string   // template identifier that was copied
	Files     []string // slash-separated paths relative to OutputDir
	Warnings  []string
}

// Generate creates the theme described by cfg under baseDir.
func Generate(baseDir string, cfg *invocation.Config, opts Options) (*Result, error) {
	store := opts.Store
	if store == nil {
		store = templates.Embedded()
	}
	tool := opts.ThemeTool
	if tool == "" {
		tool = branding.ThemeTool()
	}

	outputDir, err := filepath.Abs(filepath.Join(baseDir, cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", cfg.Name, err)
	}

	// Resolve the template before creating anything.
	tree, err := store.Open(cfg.Template)
	if err != nil {
		return nil, err
	}

	if err := EnsureEmptyDirectory(outputDir); err != nil {
		return nil, err
	}

	files, err := CopyTemplate(tree, outputDir, opts.Progress)
	if err != nil {
		return nil, err
	}

	if err := RewriteManifest(outputDir, cfg.Name); err != nil {
		return nil, err
	}

	result := &Result{
		OutputDir: outputDir,
		Template:  cfg.Template,
		Files:     files,
	}

	if cfg.WithDevtools {
		if err := WriteDevtoolsPackage(outputDir, tool); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, manifest.PackageFile)
		sort.Strings(result.Files)
	}

	// Validate the rewritten manifest; problems are reported, not fatal.
	valResult, valErr := manifest.ValidateFile(filepath.Join(outputDir, manifest.ThemeFile))
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, manifest.ThemeFile+" "+issue.String())
		}
	}

	return result, nil
}

// EnsureEmptyDirectory creates target (and missing parents) when it does not
// exist. An existing empty directory is accepted as is.
func EnsureEmptyDirectory(target string) error {
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}
		return fmt.Errorf("checking %s: %w", target, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathConflict, target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return fmt.Errorf("reading %s: %w", target, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrNotEmpty, target)
	}
	return nil
}

// WriteDevtoolsPackage writes package.json with npm scripts that run tool.
// The package name is the base name of target.
func WriteDevtoolsPackage(target, tool string) error {
	pkg := manifest.NewPackage(filepath.Base(target), tool)
	return manifest.WriteFile(filepath.Join(target, manifest.PackageFile), pkg)
}
