package httpserver

import "errors"

// Run and Shutdown failures wrap one of these.
var (
	ErrStart          = errors.New("httpserver: failed to start")
	ErrAlreadyRunning = errors.New("httpserver: server already running")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
)
