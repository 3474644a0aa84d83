package api

import (
	"encoding/json"
	"net/http"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// JSONResponse is the envelope of every JSON body except the health probe.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail is one field failure of a validation report.
type FieldDetail struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Location []any  `json:"location"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithStatus sets custom HTTP status code
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON wraps v as {"data": v}. A JSONResponse is sent as is.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}
	switch val := v.(type) {
	case JSONResponse, *JSONResponse:
		r.body = val
	default:
		r.body = JSONResponse{Data: v}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Raw sends v without the envelope.
func Raw(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}
