package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/recordkit/pkg/binder"
	"github.com/dmitrymomot/recordkit/pkg/clientip"
	"github.com/dmitrymomot/recordkit/pkg/i18n"
	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/requestid"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

// Handler serves record validation over HTTP.
type Handler struct {
	registry   *schema.Registry
	translator *i18n.Translator
	log        *slog.Logger
	maxBody    int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithTranslator localizes error messages by the negotiated request language.
func WithTranslator(t *i18n.Translator) Option {
	return func(h *Handler) { h.translator = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMaxBodySize limits JSON request bodies, binder.DefaultMaxJSONSize by default.
func WithMaxBodySize(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// NewHandler serves the records of reg. It panics on a nil registry.
func NewHandler(reg *schema.Registry, opts ...Option) *Handler {
	if reg == nil {
		panic("api: nil registry")
	}
	h := &Handler{
		registry: reg,
		log:      logger.Nop(),
		maxBody:  binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the router:
//
//	GET  /healthz
//	GET  /records
//	GET  /records/{name}
//	POST /records/{name}/validate
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	if h.translator != nil {
		r.Use(i18n.Middleware(h.translator))
	}
	r.NotFound(h.wrap(func(r *http.Request) Response { return h.fail(r, ErrNotFound) }))

	r.Get("/healthz", h.wrap(h.health))
	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.wrap(h.listRecords))
		r.Get("/{name}", h.wrap(h.getRecord))
		r.Post("/{name}/validate", h.wrap(h.validate))
	})
	return r
}

func (h *Handler) wrap(fn func(*http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}

func (h *Handler) health(*http.Request) Response {
	return Raw(http.StatusOK, map[string]string{"status": "ok"})
}

// RecordInfo describes a declared record.
type RecordInfo struct {
	Name   string      `json:"name"`
	Fields []FieldInfo `json:"fields"`
}

type FieldInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func describe(rec *schema.Record) RecordInfo {
	fields := rec.Plan().Fields()
	info := RecordInfo{Name: rec.Name(), Fields: make([]FieldInfo, len(fields))}
	for i, f := range fields {
		info.Fields[i] = FieldInfo{Name: f.Name, Type: typeString(f.Spec)}
	}
	return info
}

func typeString(spec schema.TypeSpec) string {
	if spec == nil {
		return "<nil>"
	}
	return spec.String()
}

func (h *Handler) listRecords(*http.Request) Response {
	names := h.registry.Names()
	out := make([]RecordInfo, 0, len(names))
	for _, name := range names {
		if rec, err := h.registry.Lookup(name); err == nil {
			out = append(out, describe(rec))
		}
	}
	return JSON(out)
}

func (h *Handler) getRecord(r *http.Request) Response {
	rec, err := h.registry.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		return h.fail(r, err)
	}
	return JSON(describe(rec))
}

func (h *Handler) validate(r *http.Request) Response {
	rec, err := h.registry.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		return h.fail(r, err)
	}
	inst, err := binder.Record(r, rec, binder.WithMaxSize(h.maxBody))
	if err != nil {
		return h.fail(r, err)
	}
	h.log.DebugContext(r.Context(), "payload accepted", logger.Record(rec.Name()))
	return JSON(inst)
}

// fail maps err to an error response in the request language.
func (h *Handler) fail(r *http.Request, err error) Response {
	lang := i18n.GetLocale(r.Context())

	if verr := schema.ExtractValidationError(err); verr != nil {
		if h.translator != nil {
			verr = h.translator.Localize(verr, lang)
		}
		h.log.WarnContext(r.Context(), "payload rejected", logger.Validation(verr))
		return JSON(JSONResponse{Error: &ErrorDetail{
			Code:    ErrValidation.Key,
			Message: h.message(lang, ErrValidation),
			Details: fieldDetails(verr),
		}}, WithStatus(ErrValidation.Code))
	}

	httpErr := classify(err)
	body := JSONResponse{Error: &ErrorDetail{Code: httpErr.Key, Message: h.message(lang, httpErr)}}
	switch {
	case httpErr.Code >= http.StatusInternalServerError:
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	case httpErr.Code != http.StatusNotFound:
		body.Meta = map[string]any{"reason": err.Error()}
	}
	return JSON(body, WithStatus(httpErr.Code))
}

func classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, schema.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrNotAnObject):
		return ErrBadRequest
	default:
		return ErrInternalServerError
	}
}

func (h *Handler) message(lang string, e HTTPError) string {
	if h.translator != nil {
		if msg, ok := h.translator.Translate(lang, "errors."+e.Key, nil); ok {
			return msg
		}
	}
	return strings.ToLower(http.StatusText(e.Code))
}

func fieldDetails(verr *schema.ValidationError) []FieldDetail {
	details := make([]FieldDetail, len(verr.Errors))
	for i, fe := range verr.Errors {
		details[i] = FieldDetail{
			Field:    fe.Field,
			Message:  fe.Message,
			Location: fe.Location,
			Path:     fe.Location.String(),
			Kind:     string(fe.Kind),
		}
	}
	return details
}
