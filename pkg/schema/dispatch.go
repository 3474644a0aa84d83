package schema

import (
	"fmt"
	"reflect"
	"sort"
)

// result is the outcome of checking one value: either an accepted value or the errors found.
// ok distinguishes "valid value that happens to be nil" from "no value".
type result struct {
	value any
	ok    bool
	errs  []*FieldValidationError
}

func accept(v any) result { return result{value: v, ok: true} }

func reject(errs ...*FieldValidationError) result { return result{errs: errs} }

// ValidateFields reconciles supplied fields against a plan and checks every accepted field.
// validated holds exactly the fields that passed; errs holds one entry per failure.
// It never stops at the first failure.
func ValidateFields(supplied map[string]any, plan Plan) (validated map[string]any, errs []*FieldValidationError) {
	validated = make(map[string]any, plan.Len())

	for _, f := range plan.fields {
		if _, ok := supplied[f.Name]; !ok {
			errs = append(errs, newFieldError(MissingField, f.Name, "field is required", nil))
		}
	}

	extra := make([]string, 0)
	for name := range supplied {
		if _, ok := plan.index[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		errs = append(errs, newFieldError(DisallowedField, name, "field is not allowed by the record", nil))
	}

	for _, f := range plan.fields {
		value, ok := supplied[f.Name]
		if !ok {
			continue
		}
		res := check(f.Name, value, f.Spec)
		if res.ok {
			validated[f.Name] = res.value
			continue
		}
		errs = append(errs, res.errs...)
	}

	return validated, errs
}

// check dispatches on the spec variant. Errors come back with location [field, ...].
func check(field string, value any, spec TypeSpec) result {
	switch s := spec.(type) {
	case anySpec:
		return accept(value)
	case annotatedSpec:
		return checkAnnotated(field, value, s)
	case listSpec:
		return checkList(field, value, s)
	case recordSpec:
		return checkRecord(field, value, s)
	case scalarSpec:
		return checkScalar(field, value, s)
	default:
		return reject(newFieldError(UnsupportedSpec, field,
			"unsupported type specification: "+specName(spec),
			map[string]any{"spec": specName(spec)}))
	}
}

func checkAnnotated(field string, value any, s annotatedSpec) result {
	base := check(field, value, s.base)
	if !base.ok {
		return base
	}

	current := base.value
	var errs []*FieldValidationError
	for _, v := range s.validators {
		next, err := v.Apply(current)
		if err != nil {
			fe := newFieldError(ValidatorFailure, field,
				fmt.Sprintf("Validator failure in %s: %s", v.Name(), err.Error()),
				map[string]any{"validator": v.Name(), "reason": err.Error()})
			fe.Cause = err
			errs = append(errs, fe)
			continue
		}
		current = next
	}
	if len(errs) > 0 {
		return reject(errs...)
	}
	return accept(current)
}

func checkList(field string, value any, s listSpec) result {
	items, ok := asSequence(value)
	if !ok {
		actual := valueTypeName(value)
		return reject(newFieldError(ListTypeMismatch, field,
			fmt.Sprintf("expected list %s, got %s", s.String(), actual),
			map[string]any{"expected": s.String(), "actual": actual}))
	}

	out := make([]any, 0, len(items))
	var errs []*FieldValidationError
	for i, item := range items {
		res := check(field, item, s.item)
		if !res.ok {
			for _, err := range res.errs {
				errs = append(errs, err.withIndex(i))
			}
			continue
		}
		out = append(out, res.value)
	}
	if len(errs) > 0 {
		return reject(errs...)
	}
	return accept(out)
}

func checkRecord(field string, value any, s recordSpec) result {
	if s.record == nil {
		return reject(newFieldError(UnsupportedSpec, field,
			"unsupported type specification: "+s.String(),
			map[string]any{"spec": s.String()}))
	}

	if inst, ok := value.(*Instance); ok && inst != nil && inst.record == s.record {
		return accept(inst)
	}

	if fields, ok := asMapping(value); ok {
		inst, childErrs := build(s.record, fields)
		if len(childErrs) > 0 {
			errs := make([]*FieldValidationError, len(childErrs))
			for i, err := range childErrs {
				errs[i] = err.withParent(field)
			}
			return reject(errs...)
		}
		return accept(inst)
	}

	actual := valueTypeName(value)
	return reject(newFieldError(UnsupportedValueForRecord, field,
		fmt.Sprintf("expected mapping or %s, got %s", s.record.name, actual),
		map[string]any{"expected": s.record.name, "actual": actual}))
}

func checkScalar(field string, value any, s scalarSpec) result {
	if reflect.TypeOf(value) != s.typ {
		expected, actual := s.String(), valueTypeName(value)
		return reject(newFieldError(TypeMismatch, field,
			fmt.Sprintf("expected %s, got %s", expected, actual),
			map[string]any{"expected": expected, "actual": actual}))
	}
	return accept(value)
}

// asSequence accepts any slice or array. []any is returned as is.
func asSequence(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []any{}, true
	}
	items := make([]any, rv.Len())
	for i := range rv.Len() {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// asMapping accepts any map keyed by strings.
func asMapping(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
