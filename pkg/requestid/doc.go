// Package requestid tags every HTTP request with an identifier.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv7,
// returns it in the response header and stores it in the request context.
// LogExtractor plugs the id into the logger package:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r.Use(requestid.Middleware)
package requestid
