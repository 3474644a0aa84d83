package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Record records the record name under the key "record".
func Record(name string) slog.Attr {
	return slog.String("record", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Validation summarizes a validation report under the key "validation":
// record name, error count, and the failing locations with their kinds.
// If verr is nil, it returns an empty Attr.
func Validation(verr *schema.ValidationError) slog.Attr {
	if verr == nil {
		return slog.Attr{}
	}
	failures := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		failures = append(failures, fe.Location.String()+": "+string(fe.Kind))
	}
	return Group("validation",
		slog.String("record", verr.Record),
		slog.Int("count", len(verr.Errors)),
		slog.Any("failures", failures),
	)
}
