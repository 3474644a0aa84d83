package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form decodes application/x-www-form-urlencoded and multipart/form-data bodies.
// Bodies over the WithMaxSize limit (DefaultMaxJSONSize unless set) fail with
// ErrBodyTooLarge.
//
// Form values are always strings: a key sent once maps to a string, a repeated
// key maps to a []any of strings in submission order. Uploaded files are ignored.
func Form(r *http.Request, opts ...Option) (map[string]any, error) {
	mediaType, err := requestMediaType(r)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, o.maxSize)
	}

	var values url.Values
	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err, o.maxSize)
		}
		values = r.PostForm

	case mediaType == "multipart/form-data":
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
		}
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, formError(err, o.maxSize)
		}
		values = url.Values(r.MultipartForm.Value)

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}

	return fromValues(values), nil
}

func formError(err error, limit int64) error {
	if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
}

// Query returns the URL query parameters using the same value shape as Form.
func Query(r *http.Request) map[string]any {
	return fromValues(r.URL.Query())
}

func fromValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			out[key] = vals[0]
		default:
			items := make([]any, len(vals))
			for i, v := range vals {
				items[i] = v
			}
			out[key] = items
		}
	}
	return out
}

// validBoundary follows RFC 2046: 1 to 70 characters, no trailing space.
func validBoundary(b string) bool {
	if b == "" || len(b) > 70 || strings.HasSuffix(b, " ") {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
