package logger

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestHandler(buf *bytes.Buffer, format logFormat) (*structuredHandler, *asyncWriter) {
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	return newStructuredHandler(handlerConfig{
		level:    slog.LevelDebug,
		writer:   aw,
		format:   format,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	}), aw
}

func closeWriter(t *testing.T, aw *asyncWriter) {
	t.Helper()
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(buf, formatKV)
	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(handler).With("component", "dispatch")
	LogEvent(ctx, log, slog.LevelInfo, "screen.rendered",
		slog.String("status", "OK"),
		slog.String("slug", "detox"),
	)
	closeWriter(t, aw)

	line := strings.TrimSpace(buf.String())
	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=dispatch", "event=screen.rendered", "status=ok", "rid=rid-123"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
	for _, want := range []string{"update_id=42", "user_id=7", "chat_id=9", "slug=detox"} {
		if !strings.Contains(line, want) {
			t.Fatalf("missing %s in %s", want, line)
		}
	}
}

func TestStructuredHandlerJSONOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(buf, formatJSON)
	ctx := WithRID(Background(), "rid-json")

	log := slog.New(handler).With("component", "guides")
	LogEvent(ctx, log, slog.LevelError, "catalog.load",
		slog.String("status", "fail"),
		slog.Any("err", errors.New("boom")),
		slog.Duration("duration", 1500*time.Microsecond),
	)
	closeWriter(t, aw)

	line := strings.TrimSpace(buf.String())
	prefixes := []string{`{"ts":`, `"level":"ERROR"`, `"component":"guides"`, `"event":"catalog.load"`, `"status":"fail"`, `"rid":"rid-json"`}
	pos := -1
	for _, pref := range prefixes {
		idx := strings.Index(line, pref)
		if idx == -1 || idx < pos {
			t.Fatalf("prefix %s not found in order within %s", pref, line)
		}
		pos = idx
	}
	if !strings.Contains(line, `"duration_ms":2`) {
		t.Fatalf("expected rounded duration_ms, got %s", line)
	}
	if !strings.Contains(line, `"err":"boom"`) {
		t.Fatalf("expected err text, got %s", line)
	}
}

func TestStructuredHandlerCompactRID(t *testing.T) {
	for _, tc := range []struct {
		format   logFormat
		wantFull bool
	}{
		{formatKV, false},
		{formatJSON, true},
	} {
		buf := &bytes.Buffer{}
		handler, aw := newTestHandler(buf, tc.format)
		rawRID := "123:456:789"
		LogEvent(WithRID(Background(), rawRID), slog.New(handler), slog.LevelInfo, "rid.test")
		closeWriter(t, aw)

		line := buf.String()
		if !strings.Contains(line, CompactRID(rawRID)) {
			t.Fatalf("%s: expected compact rid, got %s", tc.format, line)
		}
		if got := strings.Contains(line, "rid_full"); got != tc.wantFull {
			t.Fatalf("%s: rid_full present = %v, want %v (%s)", tc.format, got, tc.wantFull, line)
		}
	}
}

func TestCompactRID(t *testing.T) {
	if got := CompactRID("35:36:0"); got != "z.10.0" {
		t.Fatalf("CompactRID = %q", got)
	}
	if got := CompactRID("not-a-rid"); got != "not-a-rid" {
		t.Fatalf("CompactRID passthrough = %q", got)
	}
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler(1, 3)
	var allowed int
	for i := 0; i < 9; i++ {
		if s.Allow() {
			allowed++
		}
	}
	if allowed != 3 {
		t.Fatalf("allowed = %d, want 3", allowed)
	}
	s.Set(0, 0)
	if !s.Allow() {
		t.Fatal("disabled sampler must allow everything")
	}
	if num, den := parseRatioSpec("50"); num != 1 || den != 50 {
		t.Fatalf("parseRatioSpec(50) = %d/%d", num, den)
	}
}

func TestRedactToken(t *testing.T) {
	msg := `Post "https://api.telegram.org/bot123456:AAE-secret_x/sendMessage": timeout`
	got := RedactToken(msg)
	if strings.Contains(got, "AAE-secret") {
		t.Fatalf("token leaked: %s", got)
	}
	if !strings.Contains(got, "bot<redacted>/sendMessage") {
		t.Fatalf("unexpected redaction: %s", got)
	}
}
