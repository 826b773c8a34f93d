package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// DefaultFilterName names filters whose FilterMeta.Name is empty.
const DefaultFilterName = "datetime"

// FilterMeta describes the effective options of one filter invocation.
type FilterMeta struct {
	Name        string // Filter instance name (optional)
	Locale      string
	Timezone    string
	Calendar    string
	DateStyle   string
	TimeStyle   string
	Pattern     string // Custom output pattern (may be empty)
	Fingerprint string // Formatter cache key
}

// FilterName returns Name, or DefaultFilterName when Name is empty.
func (m FilterMeta) FilterName() string {
	if m.Name != "" {
		return m.Name
	}
	return DefaultFilterName
}

// SpanName returns the deterministic span name for this filter.
// Format: datefilter.filter.<name>
func (m FilterMeta) SpanName() string {
	return "datefilter.filter." + m.FilterName()
}

// Attributes returns the telemetry attributes of m. Empty optional values are
// omitted.
func (m FilterMeta) Attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("filter.name", m.FilterName()),
		attribute.String("filter.locale", m.Locale),
		attribute.String("filter.timezone", m.Timezone),
	}
	if m.Calendar != "" {
		attrs = append(attrs, attribute.String("filter.calendar", m.Calendar))
	}
	if m.DateStyle != "" {
		attrs = append(attrs, attribute.String("filter.date_style", m.DateStyle))
	}
	if m.TimeStyle != "" {
		attrs = append(attrs, attribute.String("filter.time_style", m.TimeStyle))
	}
	if m.Pattern != "" {
		attrs = append(attrs, attribute.String("filter.pattern", m.Pattern))
	}
	if m.Fingerprint != "" {
		attrs = append(attrs, attribute.String("filter.fingerprint", m.Fingerprint))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with filter-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a filter invocation.
	StartSpan(ctx context.Context, meta FilterMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta FilterMeta) (context.Context, trace.Span) {
	attrs := append(meta.Attributes(), attribute.Bool("filter.error", false))

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("filter.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// NopTracer returns a Tracer that records nothing.
func NopTracer() Tracer {
	return &tracerImpl{tracer: tracenoop.NewTracerProvider().Tracer("noop")}
}
