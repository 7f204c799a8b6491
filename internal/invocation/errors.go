package invocation

import "errors"

// Sentinel errors for each class of invalid invocation. Returned errors wrap
// one of these and carry the user-facing message.
var (
	ErrUsage         = errors.New("usage error")
	ErrOption        = errors.New("option error")
	ErrArgumentCount = errors.New("argument count error")
	ErrName          = errors.New("invalid theme name")
)

// Error is a parse failure. Its message is shown to the user verbatim.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap lets callers classify the failure with errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}
