package i18n

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML parses a bundle whose top-level keys are language codes.
//
//	en:
//	  validation:
//	    missing_field: "field is required"
func parseYAML(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = transMap
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
