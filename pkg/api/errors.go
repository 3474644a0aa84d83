package api

import "net/http"

// HTTPError is an HTTP status with a translation key under "errors.".
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrRecordNotFound        = HTTPError{Code: http.StatusNotFound, Key: "record_not_found"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrValidation            = HTTPError{Code: http.StatusUnprocessableEntity, Key: "validation_error"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
