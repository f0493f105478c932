package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		traces   string
		want     bool
	}{
		{"nothing set", "", "", false},
		{"generic endpoint", "http://localhost:4318", "", true},
		{"traces endpoint", "", "http://localhost:4318/v1/traces", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", tt.endpoint)
			t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", tt.traces)
			if got := Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "work")
	if span.SpanContext().IsSampled() {
		t.Error("spans should not be sampled before Setup")
	}
	span.End()
}
