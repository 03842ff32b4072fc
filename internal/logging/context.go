package logging

import (
	"context"
	"log/slog"

	"movieshelf/internal/requestctx"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldMovieID is the standardized structured logging key for movie identifiers.
	FieldMovieID = "movie_id"
	// FieldRoute is the standardized structured logging key for the selected view route.
	FieldRoute = "route"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if rid, ok := requestctx.RequestID(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, rid))
	}
	if route, ok := requestctx.Route(ctx); ok {
		fields = append(fields, slog.String(FieldRoute, route))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
