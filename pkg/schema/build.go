package schema

import "fmt"

// Arg is one named argument of Construct.
type Arg struct {
	name  string
	value any
}

// Set names a value for Construct.
func Set(name string, value any) Arg {
	return Arg{name: name, value: value}
}

// Build validates fields against r and returns a fully populated instance.
// On any failure it returns a *ValidationError holding every field error and no instance.
func Build(r *Record, fields map[string]any) (*Instance, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: record has no field plan", ErrUnsupportedSpec)
	}
	inst, errs := build(r, fields)
	if len(errs) > 0 {
		return nil, &ValidationError{Record: r.name, Errors: errs}
	}
	return inst, nil
}

// Validate is the entry point for fields that come from a parsed payload.
func Validate(r *Record, fields map[string]any) (*Instance, error) {
	return Build(r, fields)
}

// Construct builds an instance from named arguments. A repeated name keeps its last value.
func Construct(r *Record, args ...Arg) (*Instance, error) {
	fields := make(map[string]any, len(args))
	for _, a := range args {
		fields[a.name] = a.value
	}
	return Build(r, fields)
}

func build(r *Record, fields map[string]any) (*Instance, []*FieldValidationError) {
	validated, errs := ValidateFields(fields, r.plan)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Instance{record: r, values: validated}, nil
}
