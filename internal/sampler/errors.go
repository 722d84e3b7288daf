package sampler

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidConfig = errors.New("invalid sampler config")
	ErrNoRecords     = errors.New("no records to save")
	ErrMissingRecord = errors.New("step left no score record in vars.data")
)
