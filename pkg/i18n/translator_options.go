package i18n

import "log/slog"

// Option configures NewTranslator.
type Option func(*Translator)

// WithDefaultLanguage replaces DefaultLanguage as the fallback bundle and
// negotiation result. Empty is ignored.
func WithDefaultLanguage(lang string) Option {
	if lang == "" {
		return func(*Translator) {}
	}
	return func(t *Translator) { t.defaultLang = lang }
}

// WithFallbackToKey controls what T returns for unknown keys: the key
// itself (the default) or "".
func WithFallbackToKey(enabled bool) Option {
	return func(t *Translator) { t.fallbackToKey = enabled }
}

// WithLogger receives load events and, with WithMissingTranslationsLogging,
// lookups that found nothing.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		return func(*Translator) {}
	}
	return func(t *Translator) { t.logger = l }
}

func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.missingLogMode = enabled }
}
