package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerAddsRequestMetadata(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info", "text")

	ctx := WithRequestMetadata(context.Background(), "req-42", "/connector/v1/ingest")
	log.InfoContext(ctx, "ingested")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-42") {
		t.Fatalf("expected request id in log line, got %q", out)
	}
	if !strings.Contains(out, "route=/connector/v1/ingest") {
		t.Fatalf("expected route in log line, got %q", out)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn", "json")

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("expected json warn record, got %q", out)
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got != slog.LevelInfo {
		t.Fatalf("unexpected level: %v", got)
	}
	if got := parseLevel(" DEBUG "); got != slog.LevelDebug {
		t.Fatalf("unexpected level: %v", got)
	}
}
