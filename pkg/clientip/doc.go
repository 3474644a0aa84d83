// Package clientip resolves the client address of an HTTP request from proxy
// headers or the connection, and carries it in the request context so that it
// can be attached to log records.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LogExtractor()))
package clientip
