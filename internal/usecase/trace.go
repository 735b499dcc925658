package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("escalation-league/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens child spans; calls without a traced parent
// (tests, the migration CLI) get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func leagueAttr(id string) attribute.KeyValue {
	return attribute.String("league.id", id)
}

func podAttr(id string) attribute.KeyValue {
	return attribute.String("pod.id", id)
}

func playerAttr(id string) attribute.KeyValue {
	return attribute.String("player.id", id)
}
