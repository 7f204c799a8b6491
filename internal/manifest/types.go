package manifest

// File names written into a theme directory.
const (
	ThemeFile   = "theme.json"
	PackageFile = "package.json"
)

// StarterVersion is the version stamped on every freshly generated document.
const StarterVersion = "0.1.0"

// Theme is the contents of theme.json.
type Theme struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// Package is the npm package descriptor written with --with-devtools.
type Package struct {
	Name    string  `json:"name"`
	Private bool    `json:"private"`
	Version string  `json:"version"`
	Type    string  `json:"type"`
	Scripts Scripts `json:"scripts"`
}

// Scripts are the npm scripts that delegate to the theme tool.
type Scripts struct {
	Dev      string `json:"dev"`
	Validate string `json:"validate"`
	Pack     string `json:"pack"`
}

// NewPackage builds the descriptor for a theme directory. tool is the
// external command each script runs (e.g. "zeropress-theme").
func NewPackage(dirName, tool string) *Package {
	return &Package{
		Name:    dirName,
		Private: true,
		Version: StarterVersion,
		Type:    "module",
		Scripts: Scripts{
			Dev:      tool + " dev",
			Validate: tool + " validate",
			Pack:     tool + " pack",
		},
	}
}
