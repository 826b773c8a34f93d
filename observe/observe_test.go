package observe

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "minimal", cfg: Config{ServiceName: "svc"}},
		{name: "missing service name", cfg: Config{}, wantErr: ErrMissingServiceName},
		{
			name:    "bad tracing exporter",
			cfg:     Config{ServiceName: "svc", Tracing: TracingConfig{Enabled: true, Exporter: "zipkin", SamplePct: 1}},
			wantErr: ErrInvalidTracingExporter,
		},
		{
			name:    "sample pct too high",
			cfg:     Config{ServiceName: "svc", Tracing: TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.5}},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "sample pct negative",
			cfg:     Config{ServiceName: "svc", Tracing: TracingConfig{Enabled: true, Exporter: "none", SamplePct: -0.1}},
			wantErr: ErrInvalidSamplePct,
		},
		{
			name:    "bad metrics exporter",
			cfg:     Config{ServiceName: "svc", Metrics: MetricsConfig{Enabled: true, Exporter: "jaeger"}},
			wantErr: ErrInvalidMetricsExporter,
		},
		{
			name:    "bad log level",
			cfg:     Config{ServiceName: "svc", Logging: LoggingConfig{Enabled: true, Level: "trace"}},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "disabled subsystems are not validated",
			cfg: Config{
				ServiceName: "svc",
				Tracing:     TracingConfig{Exporter: "bogus"},
				Metrics:     MetricsConfig{Exporter: "bogus"},
				Logging:     LoggingConfig{Level: "bogus"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

// TestNewObserver_Disabled verifies no-op primitives when everything is off.
func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "svc"})
	if err != nil {
		t.Fatalf("NewObserver: %v", err)
	}
	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Fatal("observer primitives must not be nil")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

// TestNewObserver_LogsToOutput verifies the configured writer receives log lines.
func TestNewObserver_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "svc",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     LoggingConfig{Enabled: true, Level: "info"},
		Output:      &buf,
	})
	if err != nil {
		t.Fatalf("NewObserver: %v", err)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	obs.Logger().Info(context.Background(), "hello")
	if buf.Len() == 0 {
		t.Error("expected log output in configured writer")
	}
}

func TestNewObserver_InvalidConfig(t *testing.T) {
	_, err := NewObserver(context.Background(), Config{})
	if !errors.Is(err, ErrMissingServiceName) {
		t.Fatalf("expected ErrMissingServiceName, got %v", err)
	}
}
