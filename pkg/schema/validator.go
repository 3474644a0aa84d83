package schema

import (
	"errors"
	"fmt"
	"reflect"
)

// Validator is a named transform-or-reject step applied to an already type-checked value.
// A non-nil error from the function is a rejection and its message is the reason.
type Validator struct {
	name string
	fn   func(any) (any, error)
}

// NewValidator creates a validator from an untyped function.
// It panics on an empty name or nil function: validators are declared once at startup.
func NewValidator(name string, fn func(any) (any, error)) Validator {
	if name == "" {
		panic("schema: NewValidator: empty name")
	}
	if fn == nil {
		panic("schema: NewValidator: nil function")
	}
	return Validator{name: name, fn: fn}
}

// Func creates a validator that both transforms and rejects values of type T.
// Values of any other dynamic type are rejected.
func Func[T any](name string, fn func(T) (T, error)) Validator {
	if fn == nil {
		panic("schema: Func: nil function")
	}
	return NewValidator(name, func(v any) (any, error) {
		typed, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("expected %s, got %s", typeName(reflect.TypeOf((*T)(nil)).Elem()), valueTypeName(v))
		}
		return fn(typed)
	})
}

// Transform creates a validator that never rejects a value of type T.
func Transform[T any](name string, fn func(T) T) Validator {
	if fn == nil {
		panic("schema: Transform: nil function")
	}
	return Func(name, func(v T) (T, error) { return fn(v), nil })
}

// Check creates a reject-only validator; accepted values pass through unchanged.
func Check[T any](name string, fn func(T) error) Validator {
	if fn == nil {
		panic("schema: Check: nil function")
	}
	return Func(name, func(v T) (T, error) {
		if err := fn(v); err != nil {
			return v, err
		}
		return v, nil
	})
}

// Name returns the validator identity used in failure messages.
func (v Validator) Name() string { return v.name }

// Apply runs the validator. A zero Validator rejects every value.
func (v Validator) Apply(value any) (any, error) {
	if v.fn == nil {
		return nil, errors.New("validator is not initialized")
	}
	return v.fn(value)
}
