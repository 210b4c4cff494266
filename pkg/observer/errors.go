package observer

import "errors"

var (
	// ErrNilValidator is returned when an Observer is constructed without a
	// validator.
	ErrNilValidator = errors.New("nil validator provided to observer")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the observer config.
	ErrParsingConfig = errors.New("failed to parse observer config")
)
