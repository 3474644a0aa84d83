package rules

import "errors"

// Rejection reasons. Validators wrap them with details, so callers can match with errors.Is
// while the failure message stays human readable.
var (
	ErrRequired      = errors.New("value is required")
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidFormat = errors.New("invalid format")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidValue  = errors.New("invalid value")
	ErrNotNumeric    = errors.New("value is not numeric")

	// ErrUnknownRule is returned by Catalog.Lookup for a name that is not registered.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrInvalidArgs is returned when a parameterized rule gets arguments it cannot use.
	ErrInvalidArgs = errors.New("invalid rule arguments")
)
