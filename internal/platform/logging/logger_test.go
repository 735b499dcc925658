package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected a log line, got nothing")
	}
	var out map[string]any
	if err := sonic.UnmarshalString(line, &out); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return out
}

func TestLoggerWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo).With("service", "escalation-league")

	logger.Info("pod completed", "pod_id", "pod-1", "players", 4, "error", errors.New("boom"), zap.Bool("tournament", true))

	line := decodeLine(t, &buf)
	if line["msg"] != "pod completed" || line["level"] != "INFO" {
		t.Fatalf("unexpected header fields: %+v", line)
	}
	if line["service"] != "escalation-league" || line["pod_id"] != "pod-1" {
		t.Fatalf("missing key/value fields: %+v", line)
	}
	if line["players"] != float64(4) || line["error"] != "boom" || line["tournament"] != true {
		t.Fatalf("unexpected typed fields: %+v", line)
	}
	caller, _ := line["caller"].(string)
	if !strings.Contains(caller, "logger_test.go") {
		t.Fatalf("caller should point at the test, got %q", caller)
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Info("ignored")
	logger.DebugContext(context.Background(), "ignored too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")
	if line := decodeLine(t, &buf); line["msg"] != "kept" {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestLoggerAddsTraceFields(t *testing.T) {
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	var buf bytes.Buffer
	New(&buf, LevelInfo).WarnContext(ctx, "tournament generated unevenly", "league_id", "league-1")

	line := decodeLine(t, &buf)
	if line["trace_id"] != traceID.String() || line["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %+v", line)
	}
}

func TestLoggerDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo).Info("odd args", "league_id")

	line := decodeLine(t, &buf)
	value, ok := line["league_id"]
	if !ok || value != nil {
		t.Fatalf("dangling key should log as null, got %+v", line)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
