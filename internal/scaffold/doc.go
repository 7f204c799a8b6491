// Package scaffold materializes a new theme directory. It powers the single
// command of create-zeropress-theme: guard the target directory, copy the
// selected starter tree into it, stamp the theme name into theme.json, and
// optionally add an npm package descriptor for the theme devtools.
//
// Side effects are additive only. Nothing outside the target directory is
// touched, and a failure after copying has started leaves the partial tree
// in place.
package scaffold
