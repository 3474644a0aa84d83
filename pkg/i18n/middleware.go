package i18n

import "net/http"

// LangQueryParam overrides Accept-Language when present and supported.
const LangQueryParam = "lang"

// Middleware negotiates the request language against the translator's bundles
// and stores it in the request context. Read it back with GetLocale.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), requestLanguage(t, r))))
		})
	}
}

func requestLanguage(t *Translator, r *http.Request) string {
	if lang := r.URL.Query().Get(LangQueryParam); lang != "" && t.HasLanguage(lang) {
		return lang
	}
	return t.Negotiate(r.Header.Get("Accept-Language"))
}
