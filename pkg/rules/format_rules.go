package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/recordkit/pkg/schema"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonDigits = regexp.MustCompile(`\D+`)
	e164Regex = regexp.MustCompile(`^[1-9]\d{1,14}$`)
)

// Email checks a bare address with the RFC 5322 parser and normalizes it to trimmed lowercase.
func Email() schema.Validator {
	return schema.Func("email", func(s string) (string, error) {
		s = strings.ToLower(strings.TrimSpace(s))
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return s, fmt.Errorf("%w: must be a valid email address", ErrInvalidFormat)
		}
		local, domain, ok := strings.Cut(s, "@")
		if !ok || local == "" || !strings.Contains(domain, ".") ||
			strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return s, fmt.Errorf("%w: must be a valid email address", ErrInvalidFormat)
		}
		return s, nil
	})
}

// UUID checks the value is a UUID and normalizes it to the canonical lowercase hyphenated form.
func UUID() schema.Validator {
	return schema.Func("uuid", func(s string) (string, error) {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return s, fmt.Errorf("%w: must be a valid UUID", ErrInvalidFormat)
		}
		if id == uuid.Nil {
			return s, fmt.Errorf("%w: must not be the nil UUID", ErrInvalidValue)
		}
		return id.String(), nil
	})
}

// Slug checks lowercase dash-separated identifiers such as "my-record-1".
func Slug() schema.Validator {
	return schema.Check("slug", func(s string) error {
		if !slugRegex.MatchString(s) {
			return fmt.Errorf("%w: must be a lowercase slug", ErrInvalidFormat)
		}
		return nil
	})
}

// Phone strips formatting and normalizes an international number to E.164 ("+15551234567").
func Phone() schema.Validator {
	return schema.Func("phone", func(s string) (string, error) {
		digits := nonDigits.ReplaceAllString(s, "")
		if !e164Regex.MatchString(digits) {
			return s, fmt.Errorf("%w: must be an international phone number", ErrInvalidFormat)
		}
		return "+" + digits, nil
	})
}

// NationalPhone normalizes numbers of one numbering plan to bare digits starting with
// the country code. A leading trunk prefix is rewritten to the country code, so with
// country "7", trunk "8" and 11 digits "8 (950) 288-56-23" becomes "79502885623".
func NationalPhone(country, trunk string, digits int) schema.Validator {
	return schema.Func("phone_"+country, func(s string) (string, error) {
		d := nonDigits.ReplaceAllString(s, "")
		switch {
		case trunk != "" && strings.HasPrefix(d, trunk):
			d = country + strings.TrimPrefix(d, trunk)
		case strings.HasPrefix(d, country):
		default:
			if trunk == "" {
				return s, fmt.Errorf("%w: must start with +%s", ErrInvalidFormat, country)
			}
			return s, fmt.Errorf("%w: must start with %s or +%s", ErrInvalidFormat, trunk, country)
		}
		if len(d) != digits {
			return s, fmt.Errorf("%w: must contain %d digits", ErrInvalidLength, digits)
		}
		return d, nil
	})
}
