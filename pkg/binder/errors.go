package binder

import "errors"

// Decoding failures. The api package maps them to 400, 413 and 415.
var (
	ErrMissingContentType   = errors.New("binder: missing Content-Type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrBodyTooLarge         = errors.New("binder: body exceeds the size limit")
	ErrFailedToParseJSON    = errors.New("binder: malformed JSON body")
	ErrFailedToParseForm    = errors.New("binder: malformed form body")
	ErrNotAnObject          = errors.New("binder: payload is not a JSON object")
)
