package i18n

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when negotiation finds nothing better.
const DefaultLanguage = "en"

// Longer Accept-Language headers are truncated before parsing.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag    string
	weight float64
}

// acceptedTags lists the lower-cased tags of an Accept-Language header by
// descending weight, keeping header order for ties. Wildcards and q=0
// entries are not acceptable and are left out; malformed weights count as 1.
func acceptedTags(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for _, entry := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(entry, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}
		weight := 1.0
		if raw, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if w, err := strconv.ParseFloat(raw, 64); err == nil && w >= 0 && w <= 1 {
				weight = w
			}
		}
		if weight > 0 {
			tags = append(tags, weightedTag{tag, weight})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		}
		return 0
	})
	return tags
}

// ParseAcceptLanguage picks the supported language for header. Any exact
// tag match wins over a base language match ("pt-br" over "pt"); ties go
// to the higher weight. The result is lower-cased.
func ParseAcceptLanguage(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	known := make(map[string]bool, len(supported))
	for _, lang := range supported {
		known[strings.ToLower(lang)] = true
	}

	tags := acceptedTags(header)
	for _, t := range tags {
		if known[t.tag] {
			return t.tag
		}
	}
	for _, t := range tags {
		if base, _, found := strings.Cut(t.tag, "-"); found && known[base] {
			return base
		}
	}
	return fallback
}
