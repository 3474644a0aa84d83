package file

import "errors"

var (
	ErrInvalidURI    = errors.New("invalid file uri")
	ErrFileNotFound  = errors.New("file not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrFailedToOpen  = errors.New("failed to open file")
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// S3 failures, classified so callers can tell configuration problems from transient ones.
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
