// Package schema validates and normalizes semi-structured input against
// declarative record specifications.
//
// A Record is declared once, at startup, as an ordered list of fields, each
// carrying a TypeSpec. Validating a mapping of field names to arbitrary values
// against a record yields either a fully populated *Instance or a
// *ValidationError listing every failure with the exact path to the offending
// value.
//
// # Type specifications
//
// The set of specifications is closed:
//
//   - Any()                    accepts every value unchanged
//   - Scalar[T]()              accepts values whose dynamic type is exactly T
//   - RecordOf(r)              accepts an *Instance of r or a mapping that validates into r
//   - ListOf(item)             accepts a slice or array; every element is checked against item
//   - Annotated(base, vs...)   checks base first, then runs validators in order
//
// No coercion ever happens: an int is rejected where a float64 is declared,
// a bool is rejected where an int is declared, and a numeric string is never
// parsed.
//
// # Usage
//
//	item := schema.NewRecord("Item",
//	    schema.F("sku", schema.String()),
//	    schema.F("qty", schema.Annotated(schema.Int(), positive)),
//	)
//	order := schema.NewRecord("Order",
//	    schema.F("items", schema.ListOf(schema.RecordOf(item))),
//	)
//
//	inst, err := schema.Validate(order, payload)
//	if verr := schema.ExtractValidationError(err); verr != nil {
//	    for _, fe := range verr.Errors {
//	        fmt.Println(fe.Location, fe.Message) // items[0].qty expected int, got str
//	    }
//	}
//
// # Error handling
//
// A single call reports every independent defect: missing and disallowed
// fields, every failing list element and every failing validator of a chain.
// Errors of a nested record are unwrapped into the parent's aggregate with the
// parent field prepended to their location; list indices are inserted right
// after the field name. Each FieldValidationError unwraps to a sentinel
// (ErrMissingField, ErrTypeMismatch, ...) so errors.Is works on the aggregate.
//
// Validation either returns a complete instance or an error; a partially
// populated instance is never observable.
//
// # Concurrency
//
// Records, plans and validators are immutable after construction and may be
// shared between goroutines. A validation call keeps no state beyond its own
// stack.
package schema
