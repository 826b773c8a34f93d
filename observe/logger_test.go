package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("failed to parse log line as JSON: %v\nLine: %s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TestLogger_IncludesFilterFields verifies filter fields are present in log output.
func TestLogger_IncludesFilterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := FilterMeta{
		Locale:      "de_DE",
		Timezone:    "Europe/Berlin",
		Fingerprint: "fmt:abc",
	}

	logger.WithFilter(meta).Info(context.Background(), "test message")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]

	want := map[string]string{
		"filter.name":        "datetime",
		"filter.locale":      "de_DE",
		"filter.timezone":    "Europe/Berlin",
		"filter.fingerprint": "fmt:abc",
		"level":              "info",
		"msg":                "test message",
	}
	for k, v := range want {
		if got, ok := entry[k].(string); !ok || got != v {
			t.Errorf("expected %s=%q, got %v", k, v, entry[k])
		}
	}
	if _, ok := entry["filter.pattern"]; ok {
		t.Error("empty pattern should be omitted")
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp field")
	}
}

// TestLogger_WithFilterDoesNotMutateParent verifies scoping returns a new logger.
func TestLogger_WithFilterDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerWithWriter("info", &buf)
	_ = parent.WithFilter(FilterMeta{Locale: "fr_FR"})

	parent.Info(context.Background(), "plain")

	entries := decodeLines(t, &buf)
	if _, ok := entries[0]["filter.locale"]; ok {
		t.Error("parent logger should not carry filter fields")
	}
}

// TestLogger_RedactsValues verifies filtered values never reach the log.
func TestLogger_RedactsValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("debug", &buf)

	logger.Info(context.Background(), "filtered",
		Field{Key: "input", Value: "3/15/24, 2:30 PM"},
		Field{Key: "output", Value: "15.03.24"},
		Field{Key: "value", Value: "secret"},
		Field{Key: "duration_ms", Value: 1.5},
	)

	out := buf.String()
	for _, leaked := range []string{"3/15/24", "15.03.24", "secret"} {
		if strings.Contains(out, leaked) {
			t.Errorf("log output leaked %q: %s", leaked, out)
		}
	}

	entry := decodeLines(t, &buf)[0]
	for _, k := range RedactedFields {
		if entry[k] != "[REDACTED]" {
			t.Errorf("expected %s to be redacted, got %v", k, entry[k])
		}
	}
	if entry["duration_ms"] != 1.5 {
		t.Errorf("expected duration_ms=1.5, got %v", entry["duration_ms"])
	}
}

// TestLogger_LevelFiltering verifies entries below the level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{level: "debug", want: []string{"debug", "info", "warn", "error"}},
		{level: "info", want: []string{"info", "warn", "error"}},
		{level: "warn", want: []string{"warn", "error"}},
		{level: "error", want: []string{"error"}},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(tc.level, &buf)
			ctx := context.Background()

			logger.Debug(ctx, "d")
			logger.Info(ctx, "i")
			logger.Warn(ctx, "w")
			logger.Error(ctx, "e")

			entries := decodeLines(t, &buf)
			if len(entries) != len(tc.want) {
				t.Fatalf("expected %d entries, got %d", len(tc.want), len(entries))
			}
			for i, entry := range entries {
				if entry["level"] != tc.want[i] {
					t.Errorf("entry %d: expected level %q, got %v", i, tc.want[i], entry["level"])
				}
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// TestNopLogger verifies the no-op logger accepts every call.
func TestNopLogger(t *testing.T) {
	l := NopLogger()
	ctx := context.Background()
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x", Field{Key: "k", Value: 1})
	l.Debug(ctx, "x")
	if l.WithFilter(FilterMeta{}) == nil {
		t.Error("WithFilter should not return nil")
	}
}
