// Package manifest reads, writes, and validates the two JSON documents a new
// theme carries: theme.json, which names the theme, and the optional
// package.json that wires the external theme tool into npm scripts.
package manifest
