package middleware

import (
	"context"
	"net/http"
)

// idKey indexes the IDs the ID middleware stores on context.Context.
type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// forwardedIDs lists the IDs sent with every call to the content host,
// keyed by the header that carries them.
var forwardedIDs = []struct {
	header string
	key    idKey
}{
	{HeaderRequestID, requestIDKey},
	{HeaderCorrelationID, correlationIDKey},
}

// RequestIDFromContext returns the request ID stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID stored by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey)
}

// ContextWithRequestID stores a request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// ForwardIDs copies the request and correlation IDs in ctx onto h so the
// content host logs can be joined with ours. Missing IDs are skipped.
func ForwardIDs(ctx context.Context, h http.Header) {
	for _, f := range forwardedIDs {
		if id := idFrom(ctx, f.key); id != "" {
			h.Set(f.header, id)
		}
	}
}

func idFrom(ctx context.Context, key idKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
