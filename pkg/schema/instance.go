package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Instance is a validated record value. It is built atomically by Build and
// never modified afterwards: every declared field is set.
type Instance struct {
	record *Record
	values map[string]any
}

// Record returns the record type the instance was validated against.
func (i *Instance) Record() *Record { return i.record }

// Get returns the normalized value of a declared field.
// List values are copied; nested instances are shared, being immutable.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return detach(v), ok
}

// Fields returns the field values in declaration order.
func (i *Instance) Fields() []FieldValue {
	out := make([]FieldValue, 0, i.record.plan.Len())
	for _, f := range i.record.plan.fields {
		out = append(out, FieldValue{Name: f.Name, Value: detach(i.values[f.Name])})
	}
	return out
}

// FieldValue is a field name paired with its normalized value.
type FieldValue struct {
	Name  string
	Value any
}

// Map returns a copy of the instance as a plain mapping.
// Nested instances are converted to mappings as well, so the result can be fed back into Validate.
func (i *Instance) Map() map[string]any {
	out := make(map[string]any, len(i.values))
	for k, v := range i.values {
		out[k] = plain(v)
	}
	return out
}

func detach(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = detach(item)
	}
	return out
}

func plain(v any) any {
	switch val := v.(type) {
	case *Instance:
		return val.Map()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes the instance as a JSON object with keys in declaration order.
func (i *Instance) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for n, f := range i.record.plan.fields {
		if n > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(i.values[f.Name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (i *Instance) String() string {
	var buf bytes.Buffer
	buf.WriteString(i.record.name)
	buf.WriteByte('(')
	for n, f := range i.Fields() {
		if n > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s=%v", f.Name, f.Value)
	}
	buf.WriteByte(')')
	return buf.String()
}
