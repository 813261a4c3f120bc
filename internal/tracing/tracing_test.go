package tracing

import (
	"context"
	"testing"
)

func TestInitTracing_NoEndpoint(t *testing.T) {
	ctx := context.Background()

	tracer, shutdown, err := InitTracing(ctx, "pathwise-test", "")
	if err != nil {
		t.Fatalf("InitTracing() error = %v", err)
	}

	_, span := tracer.Start(ctx, "probe")
	if !span.SpanContext().IsValid() {
		t.Error("expected a recording span with a valid context")
	}
	span.End()

	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}
