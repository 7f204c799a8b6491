// Package templates holds the starter theme trees a new theme is copied from.
//
// Three trees (minimal, blog, magazine) are embedded in the binary. A user can
// point the template_root setting at a directory with the same layout to use
// their own starters instead.
package templates
