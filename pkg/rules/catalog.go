package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Factory builds a validator from textual arguments.
type Factory func(args []string) (schema.Validator, error)

// Catalog maps rule names to validator factories. It is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Default returns a catalog holding every rule of this package.
func Default() *Catalog {
	c := NewCatalog()
	c.Register("strip", noArgs(Strip))
	c.Register("lower", noArgs(Lower))
	c.Register("upper", noArgs(Upper))
	c.Register("title", noArgs(Title))
	c.Register("collapse_spaces", noArgs(CollapseSpaces))
	c.Register("not_blank", noArgs(NotBlank))
	c.Register("min_len", intArg(MinLen))
	c.Register("max_len", intArg(MaxLen))
	c.Register("match", func(args []string) (schema.Validator, error) {
		if len(args) == 0 {
			return schema.Validator{}, fmt.Errorf("%w: match expects a pattern", ErrInvalidArgs)
		}
		// commas belong to the pattern
		re, err := regexp.Compile(strings.Join(args, ","))
		if err != nil {
			return schema.Validator{}, fmt.Errorf("%w: match: %v", ErrInvalidArgs, err)
		}
		return Match(re), nil
	})
	c.Register("one_of", func(args []string) (schema.Validator, error) {
		var allowed []string
		for _, a := range args {
			for p := range strings.SplitSeq(a, "|") {
				if p = strings.TrimSpace(p); p != "" {
					allowed = append(allowed, p)
				}
			}
		}
		if len(allowed) == 0 {
			return schema.Validator{}, fmt.Errorf("%w: one_of expects at least 1 value", ErrInvalidArgs)
		}
		return OneOf(allowed...), nil
	})
	c.Register("email", noArgs(Email))
	c.Register("uuid", noArgs(UUID))
	c.Register("slug", noArgs(Slug))
	c.Register("slugify", func(args []string) (schema.Validator, error) {
		if len(args) == 0 {
			return Slugify(0), nil
		}
		return intArg(Slugify)(args)
	})
	c.Register("phone", noArgs(Phone))
	c.Register("phone_ru", noArgs(func() schema.Validator { return NationalPhone("7", "8", 11) }))
	c.Register("positive", noArgs(Positive))
	c.Register("non_negative", noArgs(NonNegative))
	c.Register("min", floatArg(Min))
	c.Register("max", floatArg(Max))
	c.Register("between", func(args []string) (schema.Validator, error) {
		nums, err := parseFloats("between", args, 2)
		if err != nil {
			return schema.Validator{}, err
		}
		if nums[0] > nums[1] {
			return schema.Validator{}, fmt.Errorf("%w: between: min is greater than max", ErrInvalidArgs)
		}
		return Between(nums[0], nums[1]), nil
	})
	c.Register("even", noArgs(Even))
	c.Register("finite", noArgs(Finite))
	c.Register("not_empty_list", noArgs(NotEmptyList))
	c.Register("min_items", intArg(MinItems))
	c.Register("max_items", intArg(MaxItems))
	c.Register("unique", noArgs(Unique))
	return c
}

// Register adds or replaces a factory. It panics on an empty name or nil factory.
func (c *Catalog) Register(name string, f Factory) {
	if name == "" || f == nil {
		panic("rules: Register: empty name or nil factory")
	}
	c.mu.Lock()
	c.factories[name] = f
	c.mu.Unlock()
}

// Names returns the registered rule names sorted alphabetically.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves an expression such as "positive" or "min_len(3)" to a validator.
func (c *Catalog) Lookup(expr string) (schema.Validator, error) {
	name, args, err := parseExpr(expr)
	if err != nil {
		return schema.Validator{}, err
	}
	c.mu.RLock()
	f, ok := c.factories[name]
	c.mu.RUnlock()
	if !ok {
		return schema.Validator{}, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return f(args)
}

func parseExpr(expr string) (string, []string, error) {
	expr = strings.TrimSpace(expr)
	open := strings.IndexByte(expr, '(')
	if open < 0 {
		if expr == "" {
			return "", nil, fmt.Errorf("%w: empty rule", ErrUnknownRule)
		}
		return expr, nil, nil
	}
	if !strings.HasSuffix(expr, ")") {
		return "", nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidArgs, expr)
	}
	name := strings.TrimSpace(expr[:open])
	inner := strings.TrimSpace(expr[open+1 : len(expr)-1])
	if name == "" {
		return "", nil, fmt.Errorf("%w: empty rule", ErrUnknownRule)
	}
	if inner == "" {
		return name, nil, nil
	}
	var args []string
	for a := range strings.SplitSeq(inner, ",") {
		args = append(args, strings.TrimSpace(a))
	}
	return name, args, nil
}

func noArgs(fn func() schema.Validator) Factory {
	return func(args []string) (schema.Validator, error) {
		if len(args) != 0 {
			return schema.Validator{}, fmt.Errorf("%w: rule takes no arguments", ErrInvalidArgs)
		}
		return fn(), nil
	}
}

func intArg(fn func(int) schema.Validator) Factory {
	return func(args []string) (schema.Validator, error) {
		if len(args) != 1 {
			return schema.Validator{}, fmt.Errorf("%w: expected 1 integer argument", ErrInvalidArgs)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return schema.Validator{}, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidArgs, args[0])
		}
		return fn(n), nil
	}
}

func floatArg(fn func(float64) schema.Validator) Factory {
	return func(args []string) (schema.Validator, error) {
		nums, err := parseFloats("numeric rule", args, 1)
		if err != nil {
			return schema.Validator{}, err
		}
		return fn(nums[0]), nil
	}
}

func parseFloats(rule string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s expects %d numeric arguments", ErrInvalidArgs, rule, want)
	}
	nums := make([]float64, want)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArgs, a)
		}
		nums[i] = f
	}
	return nums, nil
}
