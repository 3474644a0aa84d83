package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/recordkit/pkg/rules"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

type document struct {
	Records []recordDoc `yaml:"records"`
}

type recordDoc struct {
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name           string   `yaml:"name"`
	Type           string   `yaml:"type"`
	Validators     []string `yaml:"validators"`
	ItemValidators []string `yaml:"item_validators"`
}

// Option configures a loader.
type Option func(*loader)

// WithCatalog resolves validator names against c instead of rules.Default().
func WithCatalog(c *rules.Catalog) Option {
	return func(l *loader) {
		if c != nil {
			l.catalog = c
		}
	}
}

type loader struct {
	catalog *rules.Catalog
	records map[string]*schema.Record
	lines   lineIndex
}

// Parse builds a registry from a YAML schema document.
// Records must be declared before they are referenced, which keeps the record graph acyclic.
func Parse(data []byte, opts ...Option) (*schema.Registry, error) {
	l := &loader{
		catalog: rules.Default(),
		records: make(map[string]*schema.Record),
	}
	for _, opt := range opts {
		opt(l)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	l.lines = indexLines(&root)

	reg := schema.NewRegistry()
	ordered := make([]*schema.Record, 0, len(doc.Records))
	for i, rd := range doc.Records {
		r, err := l.buildRecord(i, rd)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, r)
	}
	if err := reg.Register(ordered...); err != nil {
		return nil, err
	}
	return reg, nil
}

// Load reads a YAML schema document from r.
func Load(r io.Reader, opts ...Option) (*schema.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFileRead, err)
	}
	return Parse(data, opts...)
}

// LoadFile reads a YAML schema document from path.
func LoadFile(path string, opts ...Option) (*schema.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFileRead, err)
	}
	return Parse(data, opts...)
}

func (l *loader) buildRecord(i int, rd recordDoc) (*schema.Record, error) {
	line := l.lines.record(i)
	if rd.Name == "" {
		return nil, fmt.Errorf("line %d: %w: record name is required", line, ErrInvalidDocument)
	}
	if _, ok := l.records[rd.Name]; ok || isBuiltin(rd.Name) {
		return nil, fmt.Errorf("line %d: %w: %s", line, ErrDuplicateRecord, rd.Name)
	}

	fields := make([]schema.Field, 0, len(rd.Fields))
	seen := make(map[string]bool, len(rd.Fields))
	for j, fd := range rd.Fields {
		fline := l.lines.field(i, j)
		if fd.Name == "" {
			return nil, fmt.Errorf("line %d: %w: field name is required in record %s", fline, ErrInvalidDocument, rd.Name)
		}
		if seen[fd.Name] {
			return nil, fmt.Errorf("line %d: %w: %s.%s", fline, ErrDuplicateField, rd.Name, fd.Name)
		}
		seen[fd.Name] = true

		spec, err := l.buildField(fd)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s.%s: %w", fline, rd.Name, fd.Name, err)
		}
		fields = append(fields, schema.F(fd.Name, spec))
	}

	r := schema.NewRecord(rd.Name, fields...)
	l.records[rd.Name] = r
	return r, nil
}

func (l *loader) buildField(fd fieldDoc) (schema.TypeSpec, error) {
	expr := strings.TrimSpace(fd.Type)
	if expr == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidDocument)
	}

	var spec schema.TypeSpec
	if len(fd.ItemValidators) > 0 {
		inner, ok := listItem(expr)
		if !ok {
			return nil, fmt.Errorf("%w: item_validators require a list type, got %s", ErrInvalidDocument, expr)
		}
		item, err := l.parseType(inner)
		if err != nil {
			return nil, err
		}
		vs, err := l.validators(fd.ItemValidators)
		if err != nil {
			return nil, err
		}
		spec = schema.ListOf(schema.Annotated(item, vs...))
	} else {
		var err error
		if spec, err = l.parseType(expr); err != nil {
			return nil, err
		}
	}

	if len(fd.Validators) > 0 {
		vs, err := l.validators(fd.Validators)
		if err != nil {
			return nil, err
		}
		spec = schema.Annotated(spec, vs...)
	}
	return spec, nil
}

func (l *loader) validators(exprs []string) ([]schema.Validator, error) {
	vs := make([]schema.Validator, 0, len(exprs))
	for _, expr := range exprs {
		v, err := l.catalog.Lookup(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownValidator, expr, err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// parseType resolves any, str, int, float, bool, list[<expr>] and declared record names.
func (l *loader) parseType(expr string) (schema.TypeSpec, error) {
	expr = strings.TrimSpace(expr)
	if inner, ok := listItem(expr); ok {
		item, err := l.parseType(inner)
		if err != nil {
			return nil, err
		}
		return schema.ListOf(item), nil
	}
	switch expr {
	case "any":
		return schema.Any(), nil
	case "str", "string":
		return schema.String(), nil
	case "int":
		return schema.Int(), nil
	case "float":
		return schema.Float(), nil
	case "bool":
		return schema.Bool(), nil
	}
	if r, ok := l.records[expr]; ok {
		return schema.RecordOf(r), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, expr)
}

func listItem(expr string) (string, bool) {
	if strings.HasPrefix(expr, "list[") && strings.HasSuffix(expr, "]") {
		return expr[len("list[") : len(expr)-1], true
	}
	return "", false
}

func isBuiltin(name string) bool {
	switch name {
	case "any", "str", "string", "int", "float", "bool", "list":
		return true
	}
	return false
}
