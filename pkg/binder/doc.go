// Package binder turns HTTP request bodies into field mappings for record validation.
//
// Unlike struct binding, the target shape is not known at compile time: the
// binder produces map[string]any and leaves every type decision to the record
// being validated. JSON numbers are normalized so the exact scalar checks of
// the schema package stay meaningful: 3 decodes as int, 3.0 and 3e0 as float64.
//
// # Basic Usage
//
//	func validateOrder(w http.ResponseWriter, r *http.Request) {
//		inst, err := binder.Record(r, orderRecord)
//		switch {
//		case schema.IsValidationError(err):
//			// 422 with the field report
//		case err != nil:
//			// 400 or 415, see the sentinel errors below
//		}
//		_ = json.NewEncoder(w).Encode(inst)
//	}
//
// # Available Binders
//
//   - JSON(r): application/json bodies, a single JSON object
//   - Form(r, opts...): urlencoded and multipart form values as strings
//   - Query(r): URL query parameters
//   - Payload(r): picks JSON or Form by content type
//   - Record(r, rec): Payload followed by schema.Validate
//
// DecodeJSON exposes the JSON path for non-HTTP callers such as the CLI.
//
// # Error Handling
//
// Binding failures wrap one of the package sentinels:
//
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		// 415
//	}
//
// ErrMissingContentType, ErrFailedToParseJSON, ErrFailedToParseForm,
// ErrBodyTooLarge and ErrNotAnObject indicate a malformed request.
package binder
