package service

import (
	"context"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracedInstantiator struct {
	next   Instantiator
	tracer trace.Tracer
}

// NewTracedInstantiator wraps every call of next in a span named "estimate.Instantiate".
func NewTracedInstantiator(next Instantiator, tracer trace.Tracer) Instantiator {
	if tracer == nil {
		return next
	}
	return &tracedInstantiator{next: next, tracer: tracer}
}

func (t *tracedInstantiator) Instantiate(ctx context.Context, templateID, location string, opts estimate.Options) (*model.ComputedData, error) {
	ctx, span := t.tracer.Start(ctx, "estimate.Instantiate", trace.WithAttributes(
		attribute.String("estimate.template_id", templateID),
		attribute.String("estimate.location", location),
	))
	defer span.End()

	data, err := t.next.Instantiate(ctx, templateID, location, opts)
	span.SetAttributes(attribute.String("estimate.outcome", Outcome(err)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Float64("estimate.total_cost", data.TotalCost))
	return data, nil
}
