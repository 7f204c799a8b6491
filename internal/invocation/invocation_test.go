package invocation

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Config
	}{
		{"name only", []string{"my-theme"}, Config{Name: "my-theme", Template: "minimal"}},
		{"template blog", []string{"x", "--template", "blog"}, Config{Name: "x", Template: "blog"}},
		{"template before name", []string{"--template", "magazine", "x"}, Config{Name: "x", Template: "magazine"}},
		{"devtools", []string{"x", "--with-devtools"}, Config{Name: "x", Template: "minimal", WithDevtools: true}},
		{"all options", []string{"x", "--template", "blog", "--with-devtools"}, Config{Name: "x", Template: "blog", WithDevtools: true}},
		{"last template wins", []string{"x", "--template", "blog", "--template", "minimal"}, Config{Name: "x", Template: "minimal"}},
		{"nested relative name", []string{"themes/my-theme"}, Config{Name: "themes/my-theme", Template: "minimal"}},
		{"dot in name", []string{"my.theme"}, Config{Name: "my.theme", Template: "minimal"}},
		{"single dash is positional", []string{"-x"}, Config{Name: "-x", Template: "minimal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if *got != tt.want {
				t.Errorf("Parse(%v) = %+v, want %+v", tt.argv, *got, tt.want)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	argv := []string{"x", "--template", "blog", "--with-devtools"}
	first, err := Parse(argv)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	second, err := Parse(argv)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse not deterministic: %+v vs %+v", first, second)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		kind    error
		message string
	}{
		{"no arguments", nil, ErrUsage, "Usage: create-zeropress-theme <name> [--template <minimal|blog|magazine>] [--with-devtools]"},
		{"template missing value", []string{"x", "--template"}, ErrOption, "--template requires a value"},
		{"template empty value", []string{"x", "--template", ""}, ErrOption, "--template requires a value"},
		{"template unknown", []string{"x", "--template", "fancy"}, ErrOption, `Invalid template "fancy". Allowed: minimal, blog, magazine`},
		{"template wrong case", []string{"x", "--template", "Blog"}, ErrOption, `Invalid template "Blog". Allowed: minimal, blog, magazine`},
		{"template swallows flag", []string{"x", "--template", "--with-devtools"}, ErrOption, `Invalid template "--with-devtools"`},
		{"unknown option", []string{"x", "--force"}, ErrOption, "Unknown option: --force"},
		{"equals form is unknown", []string{"x", "--template=blog"}, ErrOption, "Unknown option: --template=blog"},
		{"no positional", []string{"--with-devtools"}, ErrArgumentCount, "Expected exactly one theme directory name"},
		{"two positionals", []string{"a", "b"}, ErrArgumentCount, "Expected exactly one theme directory name"},
		{"empty name", []string{""}, ErrName, "Theme name must be a relative directory name"},
		{"parent traversal", []string{"../evil"}, ErrName, "Theme name must be a relative directory name"},
		{"inner traversal", []string{"a/../../b"}, ErrName, "Theme name must be a relative directory name"},
		{"bare parent", []string{".."}, ErrName, "Theme name must be a relative directory name"},
		{"backslash traversal", []string{`..\evil`}, ErrName, "Theme name must be a relative directory name"},
		{"absolute", []string{"/tmp/theme"}, ErrName, "Theme name must be a relative directory name"},
		{"leading backslash", []string{`\theme`}, ErrName, "Theme name must be a relative directory name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.argv)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", tt.argv, cfg)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Parse(%q) error kind = %v, want %v", tt.argv, err, tt.kind)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Parse(%q) error = %q, want it to contain %q", tt.argv, err.Error(), tt.message)
			}
		})
	}
}

func TestOptionErrorsWinOverCount(t *testing.T) {
	// Option errors are raised during the scan, before positional counting.
	_, err := Parse([]string{"a", "b", "--nope"})
	if !errors.Is(err, ErrOption) {
		t.Errorf("error = %v, want ErrOption", err)
	}
}

func TestTemplates(t *testing.T) {
	got := Templates()
	want := []string{"minimal", "blog", "magazine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Templates() = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if !IsTemplate("minimal") {
		t.Error("mutating Templates() result changed the built-in set")
	}
	if IsTemplate("MINIMAL") {
		t.Error("IsTemplate should be case-sensitive")
	}
}
