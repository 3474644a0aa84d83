package i18n

import "github.com/dmitrymomot/recordkit/pkg/schema"

// Localize returns a copy of verr with messages translated to lang.
// Errors whose translation key is unknown keep their original message.
// verr itself is never modified.
func (t *Translator) Localize(verr *schema.ValidationError, lang string) *schema.ValidationError {
	if verr == nil {
		return nil
	}
	out := &schema.ValidationError{
		Record: verr.Record,
		Errors: make([]*schema.FieldValidationError, len(verr.Errors)),
	}
	for i, fe := range verr.Errors {
		cp := *fe
		if msg, ok := t.Translate(lang, fe.TranslationKey, fe.TranslationValues); ok {
			cp.Message = msg
		}
		out.Errors[i] = &cp
	}
	return out
}
