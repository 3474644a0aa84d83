package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil target")
	// ErrLoadingEnvFile wraps failures reading a file passed to WithEnvFiles.
	ErrLoadingEnvFile = errors.New("config: cannot load env file")
	// ErrParsingConfig wraps env parse and required-variable errors.
	ErrParsingConfig = errors.New("config: cannot parse environment")
)
