package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
}

// MaxLength truncates the slug to n runes at most, never ending on a separator.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// folds ligatures and letters that have no decomposed form.
var folds = map[rune]string{
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'ł': "l", 'đ': "d", 'ı': "i",
}

// Make lowercases s, strips diacritics (é → e) and joins the remaining
// runs of ASCII letters and digits with the separator.
//
//	slug.Make("Crème Brûlée!")          // "creme-brulee"
//	slug.Make("Straße", slug.MaxLength(4)) // "stra"
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(stripMarks, strings.ToLower(s)); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	count := 0
	pendingSep := false
	write := func(r rune) bool {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			return false
		}
		if pendingSep && count > 0 {
			if cfg.maxLength > 0 && count+len([]rune(cfg.separator))+1 > cfg.maxLength {
				return false
			}
			b.WriteString(cfg.separator)
			count += len([]rune(cfg.separator))
		}
		pendingSep = false
		b.WriteRune(r)
		count++
		return true
	}

	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if !write(r) {
				return b.String()
			}
		case folds[r] != "":
			for _, f := range folds[r] {
				if !write(f) {
					return b.String()
				}
			}
		default:
			pendingSep = true
		}
	}
	return b.String()
}
