/*
Package tracing provides lightweight request tracing.

Each HTTP request gets a span. An inbound X-Trace-ID header continues the
caller's trace, X-Span-ID becomes the parent span, and both ids are echoed on
the response so the browser shell can correlate its own logs. Completed spans
are queued to a buffered collector and logged through zap.

# Usage

	tracer := tracing.New("wm", logger)
	defer tracer.Close()
	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "seed catalogue")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
