package rules_test

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/rules"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     schema.Validator
		input string
		want  string
	}{
		{"strip", rules.Strip(), "  hello \n", "hello"},
		{"lower", rules.Lower(), "HeLLo", "hello"},
		{"upper", rules.Upper(), "sku-1a", "SKU-1A"},
		{"title", rules.Title(), "hello wORLD", "Hello World"},
		{"collapse spaces", rules.CollapseSpaces(), "  a \t b\n\nc ", "a b c"},
		{"slugify", rules.Slugify(0), " Crème Brûlée, 2nd ed. ", "creme-brulee-2nd-ed"},
		{"slugify truncates", rules.Slugify(6), "Hello World", "hello"},
		{"email normalizes", rules.Email(), "  John.Doe@Example.COM ", "john.doe@example.com"},
		{"uuid canonical", rules.UUID(), "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"phone e164", rules.Phone(), "+1 (555) 123-4567", "+15551234567"},
		{"national phone trunk prefix", rules.NationalPhone("7", "8", 11), "8 (950) 288-56-23", "79502885623"},
		{"national phone country code", rules.NationalPhone("7", "8", 11), "+7 950 288 56 23", "79502885623"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.v.Apply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		v       schema.Validator
		input   any
		wantErr error
		reason  string
	}{
		{"not blank ok", rules.NotBlank(), "x", nil, ""},
		{"not blank fails", rules.NotBlank(), "   ", rules.ErrRequired, "value is required: must not be blank"},
		{"min len counts runes", rules.MinLen(3), "абв", nil, ""},
		{"min len fails", rules.MinLen(3), "ab", rules.ErrInvalidLength, "invalid length: must be at least 3 characters long"},
		{"max len fails", rules.MaxLen(2), "abc", rules.ErrInvalidLength, "invalid length: must be at most 2 characters long"},
		{"match ok", rules.Match(regexp.MustCompile(`^[A-Z]\d$`)), "A1", nil, ""},
		{"match fails", rules.Match(regexp.MustCompile(`^[A-Z]\d$`)), "a1", rules.ErrInvalidFormat, "invalid format: must match ^[A-Z]\\d$"},
		{"one of ok", rules.OneOf("red", "green"), "green", nil, ""},
		{"one of fails", rules.OneOf("red", "green"), "blue", rules.ErrInvalidValue, "invalid value: must be one of red, green"},
		{"email fails", rules.Email(), "not-an-email", rules.ErrInvalidFormat, "invalid format: must be a valid email address"},
		{"email needs dotted domain", rules.Email(), "a@localhost", rules.ErrInvalidFormat, ""},
		{"email rejects display name", rules.Email(), "Bob <bob@example.com>", rules.ErrInvalidFormat, ""},
		{"uuid fails", rules.UUID(), "nope", rules.ErrInvalidFormat, "invalid format: must be a valid UUID"},
		{"uuid rejects nil", rules.UUID(), "00000000-0000-0000-0000-000000000000", rules.ErrInvalidValue, ""},
		{"slug ok", rules.Slug(), "my-record-1", nil, ""},
		{"slug fails", rules.Slug(), "My Record", rules.ErrInvalidFormat, ""},
		{"phone fails", rules.Phone(), "012", rules.ErrInvalidFormat, ""},
		{"national phone wrong prefix", rules.NationalPhone("7", "8", 11), "9502885623", rules.ErrInvalidFormat, "invalid format: must start with 8 or +7"},
		{"national phone wrong length", rules.NationalPhone("7", "8", 11), "8950288", rules.ErrInvalidLength, "invalid length: must contain 11 digits"},
		{"positive int", rules.Positive(), 1, nil, ""},
		{"positive float", rules.Positive(), 0.5, nil, ""},
		{"positive fails", rules.Positive(), 0, rules.ErrOutOfRange, "value out of range: must be > 0"},
		{"positive rejects strings", rules.Positive(), "1", rules.ErrNotNumeric, "value is not numeric: got string"},
		{"non negative zero", rules.NonNegative(), 0, nil, ""},
		{"non negative fails", rules.NonNegative(), -0.1, rules.ErrOutOfRange, ""},
		{"min fails", rules.Min(10), 9, rules.ErrOutOfRange, "value out of range: must be >= 10"},
		{"max fails", rules.Max(1.5), 2.0, rules.ErrOutOfRange, "value out of range: must be <= 1.5"},
		{"between ok", rules.Between(1, 3), 3, nil, ""},
		{"between fails", rules.Between(1, 3), 4, rules.ErrOutOfRange, "value out of range: must be between 1 and 3"},
		{"even ok", rules.Even(), -4, nil, ""},
		{"even fails", rules.Even(), 3, rules.ErrInvalidValue, "invalid value: must be even"},
		{"not empty list fails", rules.NotEmptyList(), []any{}, rules.ErrRequired, ""},
		{"min items fails", rules.MinItems(2), []any{1}, rules.ErrInvalidLength, ""},
		{"max items fails", rules.MaxItems(1), []any{1, 2}, rules.ErrInvalidLength, "invalid length: must contain at most 1 items"},
		{"unique ok", rules.Unique(), []any{1, "1", 2}, nil, ""},
		{"unique fails", rules.Unique(), []any{1, 2, 1}, rules.ErrInvalidValue, "invalid value: item 2 duplicates item 0"},
		{"unique compares maps", rules.Unique(), []any{map[string]any{"a": 1}, map[string]any{"a": 1}}, rules.ErrInvalidValue, ""},
		{"unique compares lists", rules.Unique(), []any{[]any{1, "a"}, []any{2}, []any{1, "a"}}, rules.ErrInvalidValue, "invalid value: item 2 duplicates item 0"},
		{"unique keeps int and float apart", rules.Unique(), []any{[]any{1}, []any{1.0}, 1, 1.0}, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.v.Apply(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, err.Error())
			}
		})
	}
}

func TestRulesInRecord(t *testing.T) {
	t.Parallel()

	person := schema.NewRecord("Person",
		schema.F("name", schema.Annotated(schema.String(), rules.Strip(), rules.Title(), rules.NotBlank())),
		schema.F("age", schema.Annotated(schema.Int(), rules.Min(10))),
		schema.F("phone", schema.Annotated(schema.String(), rules.NationalPhone("7", "8", 11))),
	)

	inst, err := person.Validate(map[string]any{
		"name":  "  ruslan ",
		"age":   23,
		"phone": "8 (950) 288-56-23",
	})
	require.NoError(t, err)
	name, _ := inst.Get("name")
	phone, _ := inst.Get("phone")
	assert.Equal(t, "Ruslan", name)
	assert.Equal(t, "79502885623", phone)

	_, err = person.Validate(map[string]any{"name": " ", "age": 5, "phone": "123"})
	verr := schema.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.Equal(t, []schema.Location{{"name"}, {"age"}, {"phone"}}, verr.Locations())
	assert.Equal(t, []string{"Validator failure in min: value out of range: must be >= 10"}, verr.Get("age"))
	assert.ErrorIs(t, err, rules.ErrOutOfRange)
}

func TestUniqueLargeList(t *testing.T) {
	t.Parallel()

	items := make([]any, 100_000)
	for i := range items {
		items[i] = i
	}
	start := time.Now()
	_, err := rules.Unique().Apply(items)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	items[len(items)-1] = 0
	_, err = rules.Unique().Apply(items)
	assert.ErrorIs(t, err, rules.ErrInvalidValue)
	assert.ErrorContains(t, err, "item 99999 duplicates item 0")
}

func TestUniqueInstances(t *testing.T) {
	t.Parallel()

	point := schema.NewRecord("Point", schema.F("x", schema.Int()))
	a, err := point.Validate(map[string]any{"x": 1})
	require.NoError(t, err)
	b, err := point.Validate(map[string]any{"x": 1})
	require.NoError(t, err)
	c, err := point.Validate(map[string]any{"x": 2})
	require.NoError(t, err)

	_, err = rules.Unique().Apply([]any{a, c})
	require.NoError(t, err)
	_, err = rules.Unique().Apply([]any{a, c, b})
	assert.ErrorContains(t, err, "item 2 duplicates item 0")
}

func TestTitleConcurrent(t *testing.T) {
	t.Parallel()

	rec := schema.NewRecord("Greeting",
		schema.F("text", schema.Annotated(schema.String(), rules.Title())),
	)
	const want = "Hello World Džemal Fine"

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				inst, err := rec.Validate(map[string]any{"text": "hello wORLD džemal fine"})
				if err != nil {
					errs <- err.Error()
					return
				}
				if got, _ := inst.Get("text"); got != want {
					errs <- fmt.Sprint(got)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		assert.Fail(t, "unexpected title", got)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	c := rules.Default()

	valid := []struct {
		expr  string
		input any
		want  any
	}{
		{"strip", " a ", "a"},
		{" lower ", "A", "a"},
		{"min_len(2)", "ab", "ab"},
		{"max_len( 3 )", "abc", "abc"},
		{"between(1, 10)", 5, 5},
		{"min(-1.5)", -1.0, -1.0},
		{"one_of(a|b)", "b", "b"},
		{"one_of(a, b)", "a", "a"},
		{"match(^[a-z]{1,3}$)", "abc", "abc"},
		{"phone_ru", "89502885623", "79502885623"},
		{"unique()", []any{1, 2}, []any{1, 2}},
		{"slugify", "Hello World", "hello-world"},
		{"slugify(7)", "Hello World", "hello-w"},
	}
	for _, tt := range valid {
		v, err := c.Lookup(tt.expr)
		require.NoError(t, err, tt.expr)
		got, err := v.Apply(tt.input)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}

	invalid := []struct {
		expr string
		err  error
	}{
		{"", rules.ErrUnknownRule},
		{"nope", rules.ErrUnknownRule},
		{"(3)", rules.ErrUnknownRule},
		{"min_len(3", rules.ErrInvalidArgs},
		{"min_len(x)", rules.ErrInvalidArgs},
		{"min_len(-1)", rules.ErrInvalidArgs},
		{"min_len", rules.ErrInvalidArgs},
		{"strip(1)", rules.ErrInvalidArgs},
		{"between(3, 1)", rules.ErrInvalidArgs},
		{"between(1)", rules.ErrInvalidArgs},
		{"match([)", rules.ErrInvalidArgs},
		{"one_of()", rules.ErrInvalidArgs},
		{"slugify(x)", rules.ErrInvalidArgs},
	}
	for _, tt := range invalid {
		_, err := c.Lookup(tt.expr)
		assert.ErrorIs(t, err, tt.err, tt.expr)
	}

	assert.Contains(t, c.Names(), "positive")
	assert.Panics(t, func() { c.Register("", nil) })

	custom := rules.NewCatalog()
	custom.Register("always", func([]string) (schema.Validator, error) { return rules.Strip(), nil })
	v, err := custom.Lookup("always")
	require.NoError(t, err)
	assert.Equal(t, "strip", v.Name())
}
