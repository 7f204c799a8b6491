// Package invocation turns the raw command-line tokens into a validated
// Config. Parsing is a pure function of its input: it never touches the
// filesystem, so a bad invocation is rejected before anything is created.
package invocation
