package binder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/binder"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("numbers keep integer and float apart", func(t *testing.T) {
		t.Parallel()
		got, err := binder.JSON(jsonRequest(`{"id":7,"price":7.5,"ratio":1e2,"big":12345678901,"items":[{"qty":2}],"ok":true,"note":null}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"id":    7,
			"price": 7.5,
			"ratio": 100.0,
			"big":   12345678901,
			"items": []any{map[string]any{"qty": 2}},
			"ok":    true,
			"note":  nil,
		}, got)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"name":"Jane"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		got, err := binder.JSON(req)
		require.NoError(t, err)
		assert.Equal(t, "Jane", got["name"])
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
		_, err := binder.JSON(req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		_, err := binder.JSON(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := binder.JSON(jsonRequest(`{}`).WithContext(ctx))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	malformed := []struct {
		name string
		body string
		err  error
	}{
		{"empty body", ``, binder.ErrFailedToParseJSON},
		{"invalid syntax", `{"a":}`, binder.ErrFailedToParseJSON},
		{"truncated", `{"a":1`, binder.ErrFailedToParseJSON},
		{"trailing data", `{"a":1} {"b":2}`, binder.ErrFailedToParseJSON},
		{"array root", `[1,2]`, binder.ErrNotAnObject},
		{"null root", `null`, binder.ErrNotAnObject},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := binder.JSON(jsonRequest(tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()
		body := `{"a":"` + strings.Repeat("x", 64) + `"}`
		_, err := binder.JSON(jsonRequest(body), binder.WithMaxSize(16))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)

		_, err = binder.JSON(jsonRequest(body), binder.WithMaxSize(1024))
		assert.NoError(t, err)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	got, err := binder.DecodeJSON(bytes.NewBufferString(`{"n":-3,"f":-0.0}`))
	require.NoError(t, err)
	assert.IsType(t, 0, got["n"])
	assert.IsType(t, 0.0, got["f"])
}

func TestDecodeJSON_NumbersOutOfRange(t *testing.T) {
	t.Parallel()

	got, err := binder.DecodeJSON(bytes.NewBufferString(`{"name":1e400,"big":100000000000000000000,"neg":-100000000000000000000}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1e400"), got["name"])
	assert.Equal(t, json.Number("100000000000000000000"), got["big"])
	assert.Equal(t, json.Number("-100000000000000000000"), got["neg"])

	rec := schema.NewRecord("P",
		schema.F("name", schema.String()),
		schema.F("big", schema.Float()),
		schema.F("neg", schema.Int()),
	)
	_, err = schema.Validate(rec, got)
	verr := schema.ExtractValidationError(err)
	require.NotNil(t, verr)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	for _, field := range []string{"name", "big", "neg"} {
		assert.True(t, verr.Has(field), field)
	}
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("body over the size limit", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"note": {strings.Repeat("x", 256)}}
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.Form(req, binder.WithMaxSize(64))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})

	t.Run("payload applies the limit to forms", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"note": {strings.Repeat("x", 256)}}
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := binder.Payload(req, binder.WithMaxSize(64))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{"name": {"Ann"}, "tags": {"a", "b"}}
		req := httptest.NewRequest(http.MethodPost, "/test?ignored=1", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann", "tags": []any{"a", "b"}}, got)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("name", "Bob"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/test", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		got, err := binder.Form(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Bob"}, got)
	})

	t.Run("bad boundary", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=\"bad\x01\"")
		_, err := binder.Form(req)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("json is not a form", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Form(jsonRequest(`{}`))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test?q=go&page=2&page=3", nil)
	assert.Equal(t, map[string]any{"q": "go", "page": []any{"2", "3"}}, binder.Query(req))
}

func TestRecord(t *testing.T) {
	t.Parallel()

	item := schema.NewRecord("Item",
		schema.F("sku", schema.String()),
		schema.F("qty", schema.Int()),
	)

	t.Run("json payload", func(t *testing.T) {
		t.Parallel()
		inst, err := binder.Record(jsonRequest(`{"sku":"A-1","qty":3}`), item)
		require.NoError(t, err)
		qty, _ := inst.Get("qty")
		assert.Equal(t, 3, qty)
	})

	t.Run("float is not int", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Record(jsonRequest(`{"sku":"A-1","qty":3.0}`), item)
		verr := schema.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, []string{"expected int, got float"}, verr.Get("qty"))
	})

	t.Run("form values are strings", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader("sku=A-1&qty=3"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := binder.Record(req, item)
		assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	})

	t.Run("decode errors are not validation errors", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Record(jsonRequest(`[]`), item)
		require.Error(t, err)
		assert.False(t, schema.IsValidationError(err))
	})
}
