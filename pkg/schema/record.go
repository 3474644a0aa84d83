package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Field declares one named field of a record.
type Field struct {
	Name string
	Spec TypeSpec
}

// F is a shorthand for Field{Name: name, Spec: spec}.
func F(name string, spec TypeSpec) Field {
	return Field{Name: name, Spec: spec}
}

// Plan is the ordered mapping of field name to TypeSpec for one record type.
type Plan struct {
	fields []Field
	index  map[string]int
}

// NewPlan builds a plan from fields. It panics on empty or duplicate names.
func NewPlan(fields ...Field) Plan {
	p := Plan{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			panic("schema: field name cannot be empty")
		}
		if _, dup := p.index[f.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate field %q", f.Name))
		}
		p.index[f.Name] = len(p.fields)
		p.fields = append(p.fields, f)
	}
	return p
}

// Len returns the number of declared fields.
func (p Plan) Len() int { return len(p.fields) }

// Fields returns a copy of the declared fields in order.
func (p Plan) Fields() []Field {
	return append([]Field(nil), p.fields...)
}

// Names returns the declared field names in order.
func (p Plan) Names() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the spec of a declared field.
func (p Plan) Lookup(name string) (TypeSpec, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.fields[i].Spec, true
}

// Record is an immutable record type: a name plus its field plan.
// Records can only reference records created before them, so a spec graph is always acyclic.
type Record struct {
	name string
	plan Plan
}

// NewRecord declares a record type. It panics on an empty name or an invalid plan,
// since a malformed declaration is a programming error found at startup.
func NewRecord(name string, fields ...Field) *Record {
	if name == "" {
		panic("schema: record name cannot be empty")
	}
	return &Record{name: name, plan: NewPlan(fields...)}
}

func (r *Record) Name() string { return r.name }

// Plan returns the record's field plan.
func (r *Record) Plan() Plan { return r.plan }

// Validate is a shorthand for Validate(r, fields).
func (r *Record) Validate(fields map[string]any) (*Instance, error) {
	return Validate(r, fields)
}

// Construct is a shorthand for Construct(r, args...).
func (r *Record) Construct(args ...Arg) (*Instance, error) {
	return Construct(r, args...)
}

// Registry holds record types by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// Register adds records to the registry. Either all records are added or none is.
func (reg *Registry) Register(records ...*Record) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r == nil {
			return fmt.Errorf("%w: nil record", ErrUnsupportedSpec)
		}
		if _, ok := reg.records[r.name]; ok || seen[r.name] {
			return fmt.Errorf("%w: %s", ErrRecordExists, r.name)
		}
		seen[r.name] = true
	}
	for _, r := range records {
		reg.records[r.name] = r
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (reg *Registry) MustRegister(records ...*Record) {
	if err := reg.Register(records...); err != nil {
		panic(err)
	}
}

func (reg *Registry) Lookup(name string) (*Record, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}
	return r, nil
}

// Names returns the registered record names sorted alphabetically.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.records))
	for name := range reg.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
