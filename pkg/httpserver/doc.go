// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Ready is closed once the listener is bound and Addr reports the bound
// address, which makes ":0" usable in tests.
//
// Errors wrap ErrStart or ErrShutdown so they can be inspected with errors.Is.
package httpserver
