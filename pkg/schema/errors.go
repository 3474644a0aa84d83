package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors, one per ErrorKind. Every FieldValidationError unwraps to one of them,
// so errors.Is works on both a single field error and the aggregate.
var (
	ErrMissingField              = errors.New("missing field")
	ErrDisallowedField           = errors.New("disallowed field")
	ErrTypeMismatch              = errors.New("type mismatch")
	ErrListTypeMismatch          = errors.New("list type mismatch")
	ErrUnsupportedValueForRecord = errors.New("unsupported value for record")
	ErrValidatorFailure          = errors.New("validator failure")
	ErrUnsupportedSpec           = errors.New("unsupported specification")

	// ErrRecordExists is returned when a record name is registered twice.
	ErrRecordExists = errors.New("record already registered")
	// ErrRecordNotFound is returned by Registry.Lookup for an unknown name.
	ErrRecordNotFound = errors.New("record not found")
)

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	MissingField              ErrorKind = "missing_field"
	DisallowedField           ErrorKind = "disallowed_field"
	TypeMismatch              ErrorKind = "type_mismatch"
	ListTypeMismatch          ErrorKind = "list_type_mismatch"
	UnsupportedValueForRecord ErrorKind = "unsupported_value_for_record"
	ValidatorFailure          ErrorKind = "validator_failure"
	UnsupportedSpec           ErrorKind = "unsupported_spec"
)

// Sentinel returns the sentinel error matching the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case MissingField:
		return ErrMissingField
	case DisallowedField:
		return ErrDisallowedField
	case TypeMismatch:
		return ErrTypeMismatch
	case ListTypeMismatch:
		return ErrListTypeMismatch
	case UnsupportedValueForRecord:
		return ErrUnsupportedValueForRecord
	case ValidatorFailure:
		return ErrValidatorFailure
	default:
		return ErrUnsupportedSpec
	}
}

// TranslationKey is the i18n key used to localize messages of this kind.
func (k ErrorKind) TranslationKey() string {
	return "validation." + string(k)
}

// Location is the path from the root record to an offending value.
// Segments are either string field names or int list indices.
type Location []any

// String renders the path as items[0].qty.
func (l Location) String() string {
	var b strings.Builder
	for i, seg := range l {
		switch s := seg.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s))
			b.WriteByte(']')
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, s)
		}
	}
	return b.String()
}

// Equal reports whether both paths have the same segments.
func (l Location) Equal(other Location) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// FieldValidationError describes a single failure at one location.
type FieldValidationError struct {
	Field             string
	Message           string
	Location          Location
	Kind              ErrorKind
	TranslationKey    string
	TranslationValues map[string]any
	// Cause is the error returned by a failing validator, nil for other kinds.
	Cause error
}

func newFieldError(kind ErrorKind, field, message string, values map[string]any) *FieldValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return &FieldValidationError{
		Field:             field,
		Message:           message,
		Location:          Location{field},
		Kind:              kind,
		TranslationKey:    kind.TranslationKey(),
		TranslationValues: values,
	}
}

func (e *FieldValidationError) Error() string {
	return e.Location.String() + ": " + e.Message
}

// Unwrap returns the kind sentinel and, for validator failures, the validator's error.
func (e *FieldValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind.Sentinel(), e.Cause}
	}
	return []error{e.Kind.Sentinel()}
}

// withIndex returns a copy with index inserted right after the leading field name.
func (e *FieldValidationError) withIndex(index int) *FieldValidationError {
	loc := make(Location, 0, len(e.Location)+1)
	if len(e.Location) > 0 {
		loc = append(loc, e.Location[0])
	}
	loc = append(loc, index)
	if len(e.Location) > 1 {
		loc = append(loc, e.Location[1:]...)
	}
	cp := *e
	cp.Location = loc
	return &cp
}

// withParent returns a copy with field prepended to the location.
func (e *FieldValidationError) withParent(field string) *FieldValidationError {
	loc := make(Location, 0, len(e.Location)+1)
	loc = append(loc, field)
	loc = append(loc, e.Location...)
	cp := *e
	cp.Location = loc
	return &cp
}

// ValidationError is the aggregate of every field failure found in one validation call.
// It is only ever returned with at least one entry.
type ValidationError struct {
	Record string
	Errors []*FieldValidationError
}

func (ve *ValidationError) Error() string {
	prefix := "validation failed"
	if ve.Record != "" {
		prefix = ve.Record + ": " + prefix
	}
	if len(ve.Errors) == 0 {
		return prefix
	}
	parts := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		parts = append(parts, err.Error())
	}
	return prefix + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the field errors to errors.Is and errors.As.
func (ve *ValidationError) Unwrap() []error {
	errs := make([]error, len(ve.Errors))
	for i, err := range ve.Errors {
		errs[i] = err
	}
	return errs
}

// Has reports whether any error points exactly at path.
func (ve *ValidationError) Has(path ...any) bool {
	return len(ve.Get(path...)) > 0
}

// Get returns messages of the errors located exactly at path.
func (ve *ValidationError) Get(path ...any) []string {
	var messages []string
	for _, err := range ve.Errors {
		if err.Location.Equal(path) {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct top-level field names that failed, in order of appearance.
func (ve *ValidationError) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve.Errors {
		if len(err.Location) == 0 {
			continue
		}
		name, _ := err.Location[0].(string)
		if !seen[name] {
			fields = append(fields, name)
			seen[name] = true
		}
	}
	return fields
}

// Locations returns the location of every error, in order.
func (ve *ValidationError) Locations() []Location {
	locs := make([]Location, len(ve.Errors))
	for i, err := range ve.Errors {
		locs[i] = err.Location
	}
	return locs
}

// ExtractValidationError returns the aggregate wrapped in err, or nil.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
