package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRedactsKeysByDefault(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{})

	h.StoreError("get", "user:42", errors.New("dial tcp: refused"))

	out := buf.String()
	if strings.Contains(out, "user:42") {
		t.Fatalf("raw key leaked: %s", out)
	}
	if !strings.Contains(out, "cache.store_error") || !strings.Contains(out, "refused") {
		t.Fatalf("missing event data: %s", out)
	}
}

func TestCustomRedactor(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{Redact: func(s string) string { return "K(" + s + ")" }})
	h.SoftDeleted("a")
	if !strings.Contains(buf.String(), "K(a)") {
		t.Fatalf("custom redactor not used: %s", buf.String())
	}
}

func TestSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{DecodeFailedEvery: 3})
	for i := 0; i < 9; i++ {
		h.DecodeFailed("k", errors.New("bad"))
	}
	if n := strings.Count(buf.String(), "cache.decode_failed"); n != 3 {
		t.Fatalf("got %d log lines want 3", n)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	h := New(nil, Options{})
	h.Unavailable("get")
	h.StoreError("get", "k", errors.New("x"))
	h.SortedSetTrimmed("k", 1)
}
