package observability

import (
	"context"
	"testing"
)

func TestInitTracing_Disabled(t *testing.T) {
	tp, err := InitTracing(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("InitTracing() error = %v", err)
	}
	if tp.IsEnabled() {
		t.Error("IsEnabled() = true, want false")
	}

	_, span := tp.GetTracer("test").Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Error("disabled tracer produced a valid span context")
	}
	span.End()

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}

func TestNilProviderIsDisabled(t *testing.T) {
	var tp *TracerProvider
	if tp.IsEnabled() {
		t.Error("nil IsEnabled() = true")
	}
	if tp.GetTracer("x") == nil {
		t.Error("nil GetTracer() = nil, want a no-op tracer")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_TRACES_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318/v1/traces")
	t.Setenv("ENVIRONMENT", "")

	cfg := LoadConfigFromEnv()
	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if cfg.Endpoint != "http://collector:4318/v1/traces" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
}

func TestSessionIDContext(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc")
	if got := SessionIDFromContext(ctx); got != "abc" {
		t.Errorf("SessionIDFromContext() = %q, want abc", got)
	}
	if got := SessionIDFromContext(context.Background()); got != "" {
		t.Errorf("SessionIDFromContext(empty) = %q, want empty", got)
	}
}
