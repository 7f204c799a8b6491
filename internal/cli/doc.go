// Package cli defines the Cobra command for create-zeropress-theme. The
// command hands every token to the invocation parser unchanged and delegates
// the work to the scaffold package; this package only loads settings and
// formats output.
package cli
