// Package api exposes a schema.Registry over HTTP.
//
// The router is built on chi and answers with a JSON envelope:
//
//	{"data": ...}                        on success
//	{"error": {"code", "message", ...}}  on failure
//
// Validation failures are reported with status 422 and one detail per failed
// field location. When a Translator is configured, messages are localized by
// the language negotiated from the lang query parameter or Accept-Language.
//
// Usage:
//
//	reg, err := schemafile.LoadFile("records.yaml")
//	if err != nil {
//		return err
//	}
//	h := api.NewHandler(reg, api.WithTranslator(tr), api.WithLogger(log))
//	return httpserver.New().Run(ctx, h.Routes())
package api
