package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingTracer struct {
	noop.Tracer
	names []string
	attrs []attribute.KeyValue
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.names = append(r.names, name)
	cfg := trace.NewSpanStartConfig(opts...)
	r.attrs = append(r.attrs, cfg.Attributes()...)
	return r.Tracer.Start(ctx, name, opts...)
}

func TestTracedInstantiator_StartsSpan(t *testing.T) {
	inner := &mockInstantiator{
		instantiateFunc: func(_ context.Context, templateID, location string, _ estimate.Options) (*model.ComputedData, error) {
			return &model.ComputedData{TemplateID: templateID, Location: location}, nil
		},
	}
	tracer := &recordingTracer{}
	inst := NewTracedInstantiator(inner, tracer)

	data, err := inst.Instantiate(context.Background(), "t1", "Malaybalay City", estimate.Options{})
	if err != nil {
		t.Fatalf("Instantiate() error = %v", err)
	}
	if data.TemplateID != "t1" {
		t.Errorf("TemplateID = %q, want t1", data.TemplateID)
	}
	if len(tracer.names) != 1 || tracer.names[0] != "estimate.Instantiate" {
		t.Fatalf("spans = %v, want [estimate.Instantiate]", tracer.names)
	}
	want := map[attribute.Key]string{
		"estimate.template_id": "t1",
		"estimate.location":    "Malaybalay City",
	}
	for _, kv := range tracer.attrs {
		if v, ok := want[kv.Key]; ok && kv.Value.AsString() != v {
			t.Errorf("%s = %q, want %q", kv.Key, kv.Value.AsString(), v)
		}
		delete(want, kv.Key)
	}
	if len(want) != 0 {
		t.Errorf("missing span attributes %v", want)
	}
}

func TestTracedInstantiator_PassesErrorThrough(t *testing.T) {
	wantErr := &estimate.NotFoundError{Resource: "DUPA template", Key: "t1"}
	inner := &mockInstantiator{
		instantiateFunc: func(context.Context, string, string, estimate.Options) (*model.ComputedData, error) {
			return nil, wantErr
		},
	}
	inst := NewTracedInstantiator(inner, noop.NewTracerProvider().Tracer("test"))

	data, err := inst.Instantiate(context.Background(), "t1", "Malaybalay City", estimate.Options{})
	if !errors.Is(err, wantErr) || data != nil {
		t.Errorf("Instantiate() = %v, %v; want nil, %v", data, err, wantErr)
	}
}

func TestNewTracedInstantiator_NilTracer(t *testing.T) {
	inner := &mockInstantiator{}
	if got := NewTracedInstantiator(inner, nil); got != Instantiator(inner) {
		t.Error("expected the inner instantiator to be returned unchanged")
	}
}
