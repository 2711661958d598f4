package observer

import (
	"context"
	"time"

	quarry "github.com/nevindra/quarry"

	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ObservedSplitter wraps a quarry.Splitter with OTEL instrumentation.
// Splitting stays pure; the context is used for telemetry only.
type ObservedSplitter struct {
	inner quarry.Splitter
	inst  *Instruments
}

// WrapSplitter returns an instrumented splitter.
func WrapSplitter(inner quarry.Splitter, inst *Instruments) *ObservedSplitter {
	return &ObservedSplitter{inner: inner, inst: inst}
}

// SplitDocuments delegates to the wrapped splitter, recording a span,
// request/chunk counters, duration, and per-chunk size observations.
func (o *ObservedSplitter) SplitDocuments(ctx context.Context, docs []quarry.Document, override quarry.Strategy) []quarry.Chunk {
	ctx, span := o.inst.Tracer.Start(ctx, "quarry.split", trace.WithAttributes(
		AttrStrategy.String(string(override)),
		AttrDocCount.Int(len(docs)),
	))
	defer span.End()
	start := time.Now()

	chunks := o.inner.SplitDocuments(docs, override)

	durationMs := float64(time.Since(start).Milliseconds())
	span.SetAttributes(AttrChunkCount.Int(len(chunks)))

	attrs := metric.WithAttributes(AttrStrategy.String(string(override)))
	o.inst.SplitRequests.Add(ctx, 1, attrs)
	o.inst.ChunksProduced.Add(ctx, int64(len(chunks)), attrs)
	o.inst.SplitDuration.Record(ctx, durationMs, attrs)
	for _, c := range chunks {
		o.inst.ChunkSize.Record(ctx, float64(c.Meta.ChunkSize),
			metric.WithAttributes(AttrStrategy.String(string(c.Meta.Strategy))))
	}

	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("documents split"))
	rec.AddAttributes(
		otellog.String("chunking.strategy", string(override)),
		otellog.Int("chunking.document_count", len(docs)),
		otellog.Int("chunking.chunk_count", len(chunks)),
		otellog.Float64("chunking.duration_ms", durationMs),
	)
	o.inst.Logger.Emit(ctx, rec)

	return chunks
}
