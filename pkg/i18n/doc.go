// Package i18n translates validation reports.
//
// Translations live in YAML bundles keyed by language, with dot-separated keys
// and %{name} placeholders:
//
//	en:
//	  validation:
//	    type_mismatch: "expected %{expected}, got %{actual}"
//
// Every schema.FieldValidationError carries a translation key of the form
// validation.<kind> and the values for its placeholders, so a report can be
// rendered in any loaded language:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.BuiltinAdapter())
//	if err != nil {
//		return err
//	}
//	localized := tr.Localize(verr, "ru")
//
// BuiltinAdapter serves the embedded English and Russian bundles. NewFSAdapter
// reads custom bundles from any fs.FS, MapAdapter from memory.
//
// # HTTP
//
// Middleware negotiates the language from the lang query parameter or the
// Accept-Language header and stores it in the request context:
//
//	r.Use(i18n.Middleware(tr))
//	lang := i18n.GetLocale(req.Context())
package i18n
