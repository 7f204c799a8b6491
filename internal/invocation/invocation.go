package invocation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeropress-app/create-zeropress-theme/internal/branding"
)

const (
	optionPrefix = "--"
	optTemplate  = "--template"
	optDevtools  = "--with-devtools"

	// DefaultTemplate is used when --template is not given.
	DefaultTemplate = "minimal"
)

var templateIDs = []string{"minimal", "blog", "magazine"}

// Config is the validated result of a single invocation.
type Config struct {
	Name         string // relative target directory, also the theme name
	Template     string // one of Templates()
	WithDevtools bool
}

// Templates returns the template identifiers in display order.
func Templates() []string {
	out := make([]string, len(templateIDs))
	copy(out, templateIDs)
	return out
}

// IsTemplate reports whether id names a built-in template. Matching is exact
// and case-sensitive.
func IsTemplate(id string) bool {
	for _, t := range templateIDs {
		if t == id {
			return true
		}
	}
	return false
}

// Usage returns the one-line invocation shape.
func Usage() string {
	return fmt.Sprintf("Usage: %s <name> [%s <%s>] [%s]",
		branding.CLIName(), optTemplate, strings.Join(templateIDs, "|"), optDevtools)
}

// Parse validates argv (the tokens after the program name).
func Parse(argv []string) (*Config, error) {
	if len(argv) == 0 {
		return nil, newError(ErrUsage, Usage())
	}

	cfg := &Config{Template: DefaultTemplate}
	var positional []string

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if !strings.HasPrefix(arg, optionPrefix) {
			positional = append(positional, arg)
			continue
		}

		switch arg {
		case optDevtools:
			cfg.WithDevtools = true
		case optTemplate:
			if i+1 >= len(argv) || argv[i+1] == "" {
				return nil, newError(ErrOption, optTemplate+" requires a value")
			}
			value := argv[i+1]
			if !IsTemplate(value) {
				return nil, newError(ErrOption, fmt.Sprintf("Invalid template %q. Allowed: %s",
					value, strings.Join(templateIDs, ", ")))
			}
			cfg.Template = value
			i++
		default:
			return nil, newError(ErrOption, "Unknown option: "+arg)
		}
	}

	if len(positional) != 1 {
		return nil, newError(ErrArgumentCount, "Expected exactly one theme directory name")
	}

	name := positional[0]
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	cfg.Name = name

	return cfg, nil
}

// ValidateName rejects empty names, names with a ".." segment, and absolute
// paths.
func ValidateName(name string) error {
	if name == "" || hasParentSegment(name) || isAbsolute(name) {
		return newError(ErrName, "Theme name must be a relative directory name")
	}
	return nil
}

func hasParentSegment(name string) bool {
	segments := strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' })
	for _, s := range segments {
		if s == ".." {
			return true
		}
	}
	return false
}

// isAbsolute treats a leading separator as absolute on every platform, so
// "/x" is rejected on Windows too.
func isAbsolute(name string) bool {
	return filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`)
}
