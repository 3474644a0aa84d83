package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/recordkit/pkg/schema"
	"github.com/dmitrymomot/recordkit/pkg/slug"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Strip removes leading and trailing whitespace.
func Strip() schema.Validator {
	return schema.Transform("strip", strings.TrimSpace)
}

func Lower() schema.Validator {
	return schema.Transform("lower", strings.ToLower)
}

func Upper() schema.Validator {
	return schema.Transform("upper", strings.ToUpper)
}

// Title converts to title case using English casing rules.
// A Caser holds state, so each call gets its own.
func Title() schema.Validator {
	return schema.Transform("title", func(s string) string {
		return cases.Title(language.English).String(s)
	})
}

// CollapseSpaces replaces runs of whitespace with a single space and trims the result.
func CollapseSpaces() schema.Validator {
	return schema.Transform("collapse_spaces", func(s string) string {
		return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
	})
}

// Slugify rewrites free text into a lowercase dash-separated slug.
// maxLen limits the result in runes; zero means no limit.
func Slugify(maxLen int) schema.Validator {
	return schema.Transform("slugify", func(s string) string {
		return slug.Make(s, slug.MaxLength(maxLen))
	})
}

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank() schema.Validator {
	return schema.Check("not_blank", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: must not be blank", ErrRequired)
		}
		return nil
	})
}

// MinLen rejects strings shorter than n characters (runes, not bytes).
func MinLen(n int) schema.Validator {
	return schema.Check("min_len", func(s string) error {
		if utf8.RuneCountInString(s) < n {
			return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidLength, n)
		}
		return nil
	})
}

func MaxLen(n int) schema.Validator {
	return schema.Check("max_len", func(s string) error {
		if utf8.RuneCountInString(s) > n {
			return fmt.Errorf("%w: must be at most %d characters long", ErrInvalidLength, n)
		}
		return nil
	})
}

// Match rejects strings that do not match re.
func Match(re *regexp.Regexp) schema.Validator {
	if re == nil {
		panic("rules: Match: nil regexp")
	}
	return schema.Check("match", func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("%w: must match %s", ErrInvalidFormat, re.String())
		}
		return nil
	})
}

// OneOf rejects strings outside the allowed set.
func OneOf(allowed ...string) schema.Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return schema.Check("one_of", func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("%w: must be one of %s", ErrInvalidValue, strings.Join(allowed, ", "))
		}
		return nil
	})
}
