package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: nil translation adapter")
	ErrNoTranslations       = errors.New("i18n: no translations loaded")
	ErrFailedToReadFile     = errors.New("i18n: cannot read translation bundle")
	ErrFailedToParseYAML    = errors.New("i18n: invalid YAML bundle")
	ErrYAMLParsingCancelled = errors.New("i18n: loading cancelled")
)
