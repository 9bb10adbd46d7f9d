package dunecorex

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	meter = otel.Meter(modulePath,
		metric.WithInstrumentationVersion(buildVersion))
)

var (
	// opDurationMetric tracks how long each API call took end to end, in
	// seconds, tagged with the operation name.
	opDurationMetric, _ = meter.Float64Histogram("dunecorex.operation.duration",
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30))
)

type opTelem struct {
	startTime time.Time
	opName    string
	span      trace.Span
}

func beginOp(
	ctx context.Context,
	endpoint string,
	opName string,
	method string,
	attribs ...attribute.KeyValue,
) (context.Context, *opTelem) {
	startTime := time.Now()

	// looked up per call so a provider installed after the client was
	// created is still used
	tracer := otel.Tracer(modulePath, trace.WithInstrumentationVersion(buildVersion))

	ctx, span := tracer.Start(ctx, "dune/"+opName,
		trace.WithSpanKind(trace.SpanKindClient))
	if span.IsRecording() {
		span.SetAttributes(
			semconv.HTTPRequestMethodKey.String(method),
			attribute.String("dune.operation", opName))
		if parsed, err := url.Parse(endpoint); err == nil {
			span.SetAttributes(semconv.ServerAddress(parsed.Hostname()))
		}
		span.SetAttributes(attribs...)
	}

	return ctx, &opTelem{
		startTime: startTime,
		opName:    opName,
		span:      span,
	}
}

func (o *opTelem) End(ctx context.Context, err error) {
	dtime := time.Since(o.startTime)

	if err != nil {
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, err.Error())
	}
	o.span.End()

	// a cancelled call says nothing about how long the API takes
	if ctx.Err() == nil {
		opDurationMetric.Record(ctx, dtime.Seconds(),
			metric.WithAttributes(
				attribute.String("op", o.opName),
				attribute.Bool("error", err != nil)))
	}
}
