package rules

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// NotEmptyList rejects empty lists.
func NotEmptyList() schema.Validator {
	return schema.Check("not_empty_list", func(items []any) error {
		if len(items) == 0 {
			return fmt.Errorf("%w: list must not be empty", ErrRequired)
		}
		return nil
	})
}

func MinItems(n int) schema.Validator {
	return schema.Check("min_items", func(items []any) error {
		if len(items) < n {
			return fmt.Errorf("%w: must contain at least %d items", ErrInvalidLength, n)
		}
		return nil
	})
}

func MaxItems(n int) schema.Validator {
	return schema.Check("max_items", func(items []any) error {
		if len(items) > n {
			return fmt.Errorf("%w: must contain at most %d items", ErrInvalidLength, n)
		}
		return nil
	})
}

// Unique rejects lists with repeated elements. Comparable scalars are
// matched by value. Maps, lists and records are grouped by their JSON
// encoding and compared structurally within a group.
func Unique() schema.Validator {
	return schema.Check("unique", func(items []any) error {
		seen := make(map[any]int, len(items))
		groups := make(map[string][]int)
		for i, item := range items {
			if hashable(item) {
				if j, ok := seen[item]; ok {
					return duplicate(i, j)
				}
				seen[item] = i
				continue
			}
			key := structuralKey(item)
			for _, j := range groups[key] {
				if reflect.DeepEqual(item, items[j]) {
					return duplicate(i, j)
				}
			}
			groups[key] = append(groups[key], i)
		}
		return nil
	})
}

func duplicate(i, j int) error {
	return fmt.Errorf("%w: item %d duplicates item %d", ErrInvalidValue, i, j)
}

func hashable(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(*schema.Instance); ok {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}

// structuralKey is equal for structurally equal values. Values JSON cannot
// encode share the empty key.
func structuralKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
