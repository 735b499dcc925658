package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("escalation-league/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// routeParams are the path wildcards copied onto handler spans.
var routeParams = []struct {
	wildcard string
	key      attribute.Key
}{
	{wildcard: "leagueID", key: "league.id"},
	{wildcard: "podID", key: "pod.id"},
	{wildcard: "playerID", key: "player.id"},
}

// startSpan only opens spans under a traced request and only for handlers;
// helpers return a no-op span so the trace stays one level deep.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes such as /healthz carry no parent span.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startHandlerSpan tags the handler span with the route's ids and the caller.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	return startSpan(r.Context(), name, requestAttributes(r)...)
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(routeParams)+1)
	for _, param := range routeParams {
		if v := strings.TrimSpace(r.PathValue(param.wildcard)); v != "" {
			attrs = append(attrs, param.key.String(v))
		}
	}
	if caller, ok := callerFromContext(r.Context()); ok {
		attrs = append(attrs, attribute.String("caller.id", caller))
	}
	return attrs
}

// markSpanFailed flags server side failures on the active span. Client errors
// are expected outcomes and leave the span status unset.
func markSpanFailed(ctx context.Context, status int, err error) {
	if status < http.StatusInternalServerError || err == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, http.StatusText(status))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
