package recommend

import "context"

type traceKey struct{}

// WithTraceID attaches a request ID to the context so pipeline logs can be
// matched to the HTTP request that produced them.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// TraceIDFromContext returns the attached request ID, or "" when none was
// attached (direct service calls, tests).
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceKey{}).(string); ok {
		return id
	}
	return ""
}
