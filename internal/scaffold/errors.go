package scaffold

import "errors"

// The path errors are shown to users as "<message>: <dir>".
var (
	ErrPathConflict  = errors.New("Path exists and is not a directory")
	ErrNotEmpty      = errors.New("Directory is not empty")
	ErrManifestRead  = errors.New("reading theme manifest")
	ErrManifestParse = errors.New("parsing theme manifest")
)
