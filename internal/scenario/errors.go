package scenario

import "errors"

// Sentinel error kinds for this package.
var (
	ErrUnknownFunction   = errors.New("unknown scenario function")
	ErrDuplicateFunction = errors.New("scenario function already registered")
	ErrInvalidFunction   = errors.New("invalid scenario function")
	ErrCompletionSignal  = errors.New("step did not signal completion exactly once")
)
