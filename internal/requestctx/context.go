// Package requestctx carries per-request values (correlation id, selected
// route) through context.Context.
package requestctx

import "context"

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	routeKey     contextKey = "route"
)

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID extracts the correlation identifier if present.
func RequestID(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRoute annotates context with the name of the route selected for the request.
func WithRoute(ctx context.Context, route string) context.Context {
	if route == "" {
		return ctx
	}
	return context.WithValue(ctx, routeKey, route)
}

// Route returns the selected route name if present.
func Route(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(routeKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
