package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestValidation(t *testing.T) {
	item := schema.NewRecord("Item", schema.F("qty", schema.Int()))
	order := schema.NewRecord("Order", schema.F("items", schema.ListOf(schema.RecordOf(item))))

	_, err := order.Validate(map[string]any{"items": []any{map[string]any{"qty": "x"}}, "extra": 1})
	verr := schema.ExtractValidationError(err)
	require.NotNil(t, verr)

	attr := logger.Validation(verr)
	require.Equal(t, "validation", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "Order", g[0].Value.String())
	assert.Equal(t, int64(2), g[1].Value.Int64())
	assert.Equal(t, []string{
		"extra: disallowed_field",
		"items[0].qty: type_mismatch",
	}, g[2].Value.Any())

	assert.True(t, logger.Validation(nil).Equal(slog.Attr{}))
}
