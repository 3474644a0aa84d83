package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// Option configures decoding limits.
type Option func(*options)

type options struct {
	maxSize int64
}

// WithMaxSize overrides DefaultMaxJSONSize. Non-positive values are ignored.
func WithMaxSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// JSON decodes an application/json request body into a field mapping.
// The body must hold exactly one JSON object.
func JSON(r *http.Request, opts ...Option) (map[string]any, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	mediaType, err := requestMediaType(r)
	if err != nil {
		return nil, err
	}
	if mediaType != "application/json" {
		return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}

	return DecodeJSON(r.Body, opts...)
}

// DecodeJSON reads one JSON object from rd.
//
// Numbers are normalized so that integral literals become int and every other
// number becomes float64. Nested objects become map[string]any, arrays []any.
func DecodeJSON(rd io.Reader, opts ...Option) (map[string]any, error) {
	o := newOptions(opts)

	body, err := io.ReadAll(io.LimitReader(rd, o.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > o.maxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.maxSize)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	obj, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotAnObject, jsonKind(raw))
	}
	return obj, nil
}

func normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		return number(val)
	case map[string]any:
		for k, item := range val {
			val[k] = normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalize(item)
		}
		return val
	default:
		return v
	}
}

// number maps integral literals within int range to int and other finite
// literals to float64. Anything else, such as 1e400 or an integer beyond
// int range, stays a json.Number, which no scalar spec accepts.
func number(n json.Number) any {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		return n
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func requestMediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: missing content-type header", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}
	return strings.ToLower(mediaType), nil
}
