package i18n

import "context"

type localeKey struct{}

// SetLocale stores the negotiated language in ctx.
func SetLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey{}, lang)
}

// GetLocale reads the language stored by SetLocale or Middleware, or
// DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}
