package schema

import (
	"reflect"
	"strings"
)

// TypeSpec describes the shape a field value must have.
// The set of implementations is closed: Any, Scalar, RecordOf, ListOf and Annotated.
type TypeSpec interface {
	// String returns a readable type name used in error messages.
	String() string
	typeSpec()
}

type anySpec struct{}

// Any accepts every value unchanged.
func Any() TypeSpec { return anySpec{} }

func (anySpec) String() string { return "any" }
func (anySpec) typeSpec()      {}

type scalarSpec struct {
	typ reflect.Type
}

// Scalar accepts only values whose dynamic type is exactly T.
func Scalar[T any]() TypeSpec {
	return scalarSpec{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// ScalarOf is the non-generic form of Scalar. It panics on a nil type.
func ScalarOf(t reflect.Type) TypeSpec {
	if t == nil {
		panic("schema: ScalarOf: nil type")
	}
	return scalarSpec{typ: t}
}

// String, Int, Float and Bool are shorthands for the common scalar types.
func String() TypeSpec { return Scalar[string]() }
func Int() TypeSpec    { return Scalar[int]() }
func Float() TypeSpec  { return Scalar[float64]() }
func Bool() TypeSpec   { return Scalar[bool]() }

func (s scalarSpec) String() string { return typeName(s.typ) }
func (scalarSpec) typeSpec()        {}

type recordSpec struct {
	record *Record
}

// RecordOf accepts an *Instance of r or a field mapping that validates into r.
func RecordOf(r *Record) TypeSpec { return recordSpec{record: r} }

func (s recordSpec) String() string {
	if s.record == nil {
		return "record(nil)"
	}
	return s.record.Name()
}
func (recordSpec) typeSpec() {}

type listSpec struct {
	item TypeSpec
}

// ListOf accepts an ordered sequence whose elements each satisfy item.
func ListOf(item TypeSpec) TypeSpec { return listSpec{item: item} }

func (s listSpec) String() string { return "list[" + specName(s.item) + "]" }
func (listSpec) typeSpec()        {}

type annotatedSpec struct {
	base       TypeSpec
	validators []Validator
}

// Annotated checks the value against base and then runs validators in order.
func Annotated(base TypeSpec, validators ...Validator) TypeSpec {
	return annotatedSpec{base: base, validators: append([]Validator(nil), validators...)}
}

func (s annotatedSpec) String() string {
	parts := make([]string, 0, len(s.validators)+1)
	parts = append(parts, specName(s.base))
	for _, v := range s.validators {
		parts = append(parts, v.Name())
	}
	return "Annotated[" + strings.Join(parts, ", ") + "]"
}
func (annotatedSpec) typeSpec() {}

func specName(s TypeSpec) string {
	if s == nil {
		return "<nil>"
	}
	return s.String()
}

// typeName renders Go types with the short names used across error messages.
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	switch t {
	case reflect.TypeOf(""):
		return "str"
	case reflect.TypeOf(0):
		return "int"
	case reflect.TypeOf(0.0):
		return "float"
	case reflect.TypeOf(false):
		return "bool"
	case reflect.TypeOf((*Instance)(nil)):
		return "record"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "mapping"
	}
	return t.String()
}

func valueTypeName(v any) string {
	if inst, ok := v.(*Instance); ok && inst != nil && inst.record != nil {
		return inst.record.Name()
	}
	return typeName(reflect.TypeOf(v))
}
