package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer is a noop until the embedding process installs a tracer provider.
var GlobalTracer = otel.Tracer("workout-sessions")

// EndWithError records err on the span (if any) and ends it.
// Meant to be deferred with a pointer to the named error result.
func EndWithError(span trace.Span, err *error) {
	if err != nil && *err != nil {
		span.SetStatus(codes.Error, (*err).Error())
		span.RecordError(*err)
	}
	span.End()
}
