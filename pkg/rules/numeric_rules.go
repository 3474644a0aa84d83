package rules

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// numericCheck builds a validator for int and float64 values that never changes the value.
func numericCheck(name string, fn func(float64) error) schema.Validator {
	return schema.NewValidator(name, func(v any) (any, error) {
		var f float64
		switch n := v.(type) {
		case int:
			f = float64(n)
		case float64:
			f = n
		default:
			return v, fmt.Errorf("%w: got %T", ErrNotNumeric, v)
		}
		if err := fn(f); err != nil {
			return v, err
		}
		return v, nil
	})
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Positive rejects zero and negative numbers.
func Positive() schema.Validator {
	return numericCheck("positive", func(f float64) error {
		if f <= 0 {
			return fmt.Errorf("%w: must be > 0", ErrOutOfRange)
		}
		return nil
	})
}

func NonNegative() schema.Validator {
	return numericCheck("non_negative", func(f float64) error {
		if f < 0 {
			return fmt.Errorf("%w: must be >= 0", ErrOutOfRange)
		}
		return nil
	})
}

func Min(min float64) schema.Validator {
	return numericCheck("min", func(f float64) error {
		if f < min {
			return fmt.Errorf("%w: must be >= %s", ErrOutOfRange, formatNumber(min))
		}
		return nil
	})
}

func Max(max float64) schema.Validator {
	return numericCheck("max", func(f float64) error {
		if f > max {
			return fmt.Errorf("%w: must be <= %s", ErrOutOfRange, formatNumber(max))
		}
		return nil
	})
}

// Between rejects numbers outside the inclusive range [min, max].
func Between(min, max float64) schema.Validator {
	return numericCheck("between", func(f float64) error {
		if f < min || f > max {
			return fmt.Errorf("%w: must be between %s and %s", ErrOutOfRange, formatNumber(min), formatNumber(max))
		}
		return nil
	})
}

// Even rejects odd and fractional numbers.
func Even() schema.Validator {
	return numericCheck("even", func(f float64) error {
		if math.Mod(f, 2) != 0 {
			return fmt.Errorf("%w: must be even", ErrInvalidValue)
		}
		return nil
	})
}

// Finite rejects NaN and infinities.
func Finite() schema.Validator {
	return numericCheck("finite", func(f float64) error {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: must be a finite number", ErrInvalidValue)
		}
		return nil
	})
}
