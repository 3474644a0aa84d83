// Package logger builds context-aware slog loggers for the recordkit binaries.
//
// New returns a *slog.Logger configured by functional options. The handler is
// slog's JSON or text handler, wrapped so that registered ContextExtractor
// callbacks add request-scoped attributes (such as the request id) to every
// record logged with a context.
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithService("recordkit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//
//	log.WarnContext(ctx, "payload rejected",
//		logger.Record("Order"),
//		logger.Validation(verr),
//	)
//
// Config holds the LOG_LEVEL and LOG_FORMAT variables; Config.Options parses
// them with ParseLevel and ParseFormat.
//
// # Attributes
//
// Helpers such as Error, Errors and RequestID return an empty Attr for nil or
// empty input, so they can be passed unconditionally:
//
//	log.Info("schema loaded", logger.Error(err))
//
// Validation condenses a *schema.ValidationError into a group holding the
// record name, the failure count and "location: kind" pairs.
package logger
