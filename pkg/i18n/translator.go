package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Translator resolves dot-separated keys to messages per language.
// Translations are loaded once; a Translator is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, trans := range translations {
		if lang == "" || trans == nil {
			return nil, fmt.Errorf("%w: empty language code or nil bundle", ErrNoTranslations)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the loaded language codes sorted alphabetically.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the language used when negotiation finds no match.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Negotiate picks the best supported language for an Accept-Language header.
func (t *Translator) Negotiate(header string) string {
	return ParseAcceptLanguage(header, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// Translate returns the message for key with %{name} placeholders filled from params.
// ok is false when neither lang nor the default language defines key.
func (t *Translator) Translate(lang, key string, params map[string]any) (string, bool) {
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}
	return namedSprintf(tmpl, params), true
}

// T translates a key with key-value string arguments, falling back to the key itself.
//
//	// With translation "welcome": "Hello, %{name}!"
//	msg := translator.T("en", "welcome", "name", "John")
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	if msg, ok := t.Translate(lang, key, params); ok {
		return msg
	}
	if t.fallbackToKey {
		return namedSprintf(key, params)
	}
	return ""
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.type_mismatch" reads m["validation"]["type_mismatch"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		if current, ok = next.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders; unknown placeholders are kept as is.
func namedSprintf(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// HasLanguage reports whether a bundle for lang is loaded.
func (t *Translator) HasLanguage(lang string) bool {
	_, ok := t.translations[lang]
	return ok
}
