package binder

import (
	"net/http"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Payload decodes the request body according to its content type.
// JSON bodies go through JSON, form bodies through Form.
func Payload(r *http.Request, opts ...Option) (map[string]any, error) {
	mediaType, err := requestMediaType(r)
	if err != nil {
		return nil, err
	}
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return Form(r, opts...)
	default:
		return JSON(r, opts...)
	}
}

// Record decodes the request body and validates it against rec.
// Decoding failures are returned as is; validation failures as *schema.ValidationError.
func Record(r *http.Request, rec *schema.Record, opts ...Option) (*schema.Instance, error) {
	fields, err := Payload(r, opts...)
	if err != nil {
		return nil, err
	}
	return schema.Validate(rec, fields)
}
