package schema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

var (
	vStrip = schema.Transform("strip", strings.TrimSpace)
	vLower = schema.Transform("lower", strings.ToLower)
	vUpper = schema.Transform("upper", strings.ToUpper)

	vPositive = schema.Check("positive", func(x int) error {
		if x <= 0 {
			return errors.New("must be > 0")
		}
		return nil
	})
	vEven = schema.Check("even", func(x int) error {
		if x%2 != 0 {
			return errors.New("odd value")
		}
		return nil
	})
	vNonEmptyList = schema.Check("non_empty_list", func(x []any) error {
		if len(x) == 0 {
			return errors.New("list is empty")
		}
		return nil
	})
	vMaxLen3 = schema.Check("max_len_3", func(x []any) error {
		if len(x) > 3 {
			return errors.New("list is too long")
		}
		return nil
	})
)

func TestAnnotated_Scalar(t *testing.T) {
	t.Parallel()

	t.Run("applies transforms in order", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.String(), vStrip, vLower)))
		inst, err := r.Construct(schema.Set("field", "  HeLLo  "))
		require.NoError(t, err)
		got, _ := inst.Get("field")
		assert.Equal(t, "hello", got)
	})

	t.Run("validator failure names validator and reason", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.Int(), vPositive)))
		_, err := r.Construct(schema.Set("field", 0))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 1)
		fe := verr.Errors[0]
		assert.Equal(t, "Validator failure in positive: must be > 0", fe.Message)
		assert.Equal(t, schema.Location{"field"}, fe.Location)
		assert.Equal(t, schema.ValidatorFailure, fe.Kind)
		assert.Equal(t, "positive", fe.TranslationValues["validator"])
		assert.Equal(t, "must be > 0", fe.TranslationValues["reason"])
		assert.ErrorIs(t, err, schema.ErrValidatorFailure)
	})

	t.Run("type error short-circuits validators", func(t *testing.T) {
		t.Parallel()
		calls := 0
		counting := schema.NewValidator("counting", func(v any) (any, error) {
			calls++
			return v, nil
		})
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.Int(), counting, vPositive)))
		_, err := r.Construct(schema.Set("field", "123"))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, schema.TypeMismatch, verr.Errors[0].Kind)
		assert.Equal(t, "expected int, got str", verr.Errors[0].Message)
		assert.Zero(t, calls)
	})

	t.Run("chain continues after failure and collects all failures", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.Int(), vEven, vPositive)))
		_, err := r.Construct(schema.Set("field", -3))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 2)
		assert.Equal(t, "Validator failure in even: odd value", verr.Errors[0].Message)
		assert.Equal(t, "Validator failure in positive: must be > 0", verr.Errors[1].Message)
	})

	t.Run("failed validator keeps the previous value for the next one", func(t *testing.T) {
		t.Parallel()
		var seen []any
		record := func(name string, fail bool) schema.Validator {
			return schema.NewValidator(name, func(v any) (any, error) {
				seen = append(seen, v)
				if fail {
					return "garbage", errors.New("boom")
				}
				return v.(string) + "!", nil
			})
		}
		r := schema.NewRecord("S", schema.F("field",
			schema.Annotated(schema.String(), record("first", false), record("second", true), record("third", false))))
		_, err := r.Construct(schema.Set("field", "a"))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, "Validator failure in second: boom", verr.Errors[0].Message)
		assert.Equal(t, []any{"a", "a!", "a!"}, seen)
	})

	t.Run("typed validator rejects unexpected input type", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.Any(), vStrip)))
		_, err := r.Construct(schema.Set("field", 5))
		verr := validationErr(t, err)
		assert.Equal(t, "Validator failure in strip: expected str, got int", verr.Errors[0].Message)
	})

	t.Run("zero validator rejects", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field", schema.Annotated(schema.Int(), schema.Validator{})))
		_, err := r.Construct(schema.Set("field", 1))
		verr := validationErr(t, err)
		assert.Equal(t, schema.ValidatorFailure, verr.Errors[0].Kind)
	})
}

func TestAnnotated_Lists(t *testing.T) {
	t.Parallel()

	t.Run("list level validators", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field",
			schema.Annotated(schema.ListOf(schema.Int()), vNonEmptyList, vMaxLen3)))
		inst, err := r.Construct(schema.Set("field", []any{1, 2, 3}))
		require.NoError(t, err)
		got, _ := inst.Get("field")
		assert.Equal(t, []any{1, 2, 3}, got)

		_, err = r.Construct(schema.Set("field", []any{}))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, "Validator failure in non_empty_list: list is empty", verr.Errors[0].Message)
		assert.Equal(t, schema.Location{"field"}, verr.Errors[0].Location)
	})

	t.Run("list level validators see a non list as type error", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field",
			schema.Annotated(schema.ListOf(schema.Int()), vNonEmptyList)))
		_, err := r.Construct(schema.Set("field", "not-a-list"))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, schema.ListTypeMismatch, verr.Errors[0].Kind)
	})

	t.Run("item validators", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("field",
			schema.ListOf(schema.Annotated(schema.Int(), vEven, vPositive))))
		inst, err := r.Construct(schema.Set("field", []any{2, 4, 6}))
		require.NoError(t, err)
		got, _ := inst.Get("field")
		assert.Equal(t, []any{2, 4, 6}, got)

		_, err = r.Construct(schema.Set("field", []any{2, 3, -4}))
		verr := validationErr(t, err)
		require.Len(t, verr.Errors, 2)
		assert.Equal(t, schema.Location{"field", 1}, verr.Errors[0].Location)
		assert.Equal(t, "Validator failure in even: odd value", verr.Errors[0].Message)
		assert.Equal(t, schema.Location{"field", 2}, verr.Errors[1].Location)
		assert.Equal(t, "Validator failure in positive: must be > 0", verr.Errors[1].Message)
	})

	t.Run("transforms items", func(t *testing.T) {
		t.Parallel()
		r := schema.NewRecord("S", schema.F("tags",
			schema.ListOf(schema.Annotated(schema.String(), vStrip, vUpper))))
		inst, err := r.Construct(schema.Set("tags", []any{" a ", "b"}))
		require.NoError(t, err)
		got, _ := inst.Get("tags")
		assert.Equal(t, []any{"A", "B"}, got)
	})
}

func TestSpecString(t *testing.T) {
	t.Parallel()

	item := schema.NewRecord("Item")
	tests := []struct {
		spec schema.TypeSpec
		want string
	}{
		{schema.Any(), "any"},
		{schema.String(), "str"},
		{schema.Float(), "float"},
		{schema.ListOf(schema.Int()), "list[int]"},
		{schema.ListOf(schema.RecordOf(item)), "list[Item]"},
		{schema.Annotated(schema.Int(), vPositive, vEven), "Annotated[int, positive, even]"},
		{schema.ListOf(nil), "list[<nil>]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.spec.String())
	}
}

func TestNewValidator_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { schema.NewValidator("", func(v any) (any, error) { return v, nil }) })
	assert.Panics(t, func() { schema.NewValidator("x", nil) })
	assert.Panics(t, func() { schema.NewRecord("R", schema.F("a", schema.Int()), schema.F("a", schema.Int())) })
	assert.Panics(t, func() { schema.NewRecord("") })
}
