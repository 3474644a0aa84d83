// Package rules provides ready-made named validators for schema.Annotated chains.
//
// Every exported function returns a schema.Validator whose name is used in
// failure messages ("Validator failure in min_len: invalid length: must be at
// least 3 characters long"). Transforms (Strip, Lower, Title, ...) never reject
// a value of the right type; checks (MinLen, Positive, Email, ...) pass the
// value through unchanged or reject it with a reason wrapping one of the
// package sentinels (ErrInvalidLength, ErrOutOfRange, ...).
//
// Rules are grouped by family: string_rules.go, format_rules.go,
// numeric_rules.go and collection_rules.go. Catalog maps rule names and
// parameterized forms such as "min_len(3)" to validators, which is how
// declarative schema files reference them.
//
//	name := schema.Annotated(schema.String(), rules.Strip(), rules.CollapseSpaces(), rules.MinLen(2))
//	qty  := schema.Annotated(schema.Int(), rules.Positive())
//
// Numeric rules accept both int and float64 values and never change the value
// or its type.
package rules
