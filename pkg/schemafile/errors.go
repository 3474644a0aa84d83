package schemafile

import "errors"

var (
	ErrInvalidDocument  = errors.New("invalid schema document")
	ErrUnknownType      = errors.New("unknown type")
	ErrUnknownValidator = errors.New("unknown validator")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrFileRead         = errors.New("failed to read schema file")
)
