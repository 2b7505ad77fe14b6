package connector

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type ingestMetrics struct {
	requests           metric.Int64Counter
	outcomes           metric.Int64Counter
	annotationFailures metric.Int64Counter
}

func newIngestMetrics() ingestMetrics {
	meter := otel.Meter("github.com/fr0stylo/contentconnector/internal/webhooks/connector")
	requests, _ := meter.Int64Counter("connector.ingest.requests",
		metric.WithDescription("Ingest requests received"))
	outcomes, _ := meter.Int64Counter("connector.ingest.outcomes",
		metric.WithDescription("Ingest requests by outcome"))
	annotationFailures, _ := meter.Int64Counter("connector.ingest.annotation_failures",
		metric.WithDescription("Best-effort annotation steps that failed"))
	return ingestMetrics{
		requests:           requests,
		outcomes:           outcomes,
		annotationFailures: annotationFailures,
	}
}

func (m ingestMetrics) recordRequest(ctx context.Context) {
	m.requests.Add(ctx, 1)
}

func (m ingestMetrics) recordOutcome(ctx context.Context, outcome string) {
	m.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m ingestMetrics) recordAnnotationFailure(ctx context.Context, step string) {
	m.annotationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("step", step)))
}
