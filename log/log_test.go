package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdLoggerWritesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf)
	if err := l.Log(LevelInfo, "msg", "hello"); err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected output to contain %q, got %q", "hello", buf.String())
	}
}

func TestFilterDropsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	base := NewStdLogger(&buf)
	filtered := NewFilter(base, FilterLevel(LevelError))

	if err := filtered.Log(LevelInfo, "msg", "should be dropped"); err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected info record to be filtered out, got %q", buf.String())
	}

	if err := filtered.Log(LevelError, "msg", "should pass"); err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "should pass") {
		t.Fatalf("expected error record to pass filter, got %q", buf.String())
	}
}

func TestHelperNilLoggerIsNoOp(t *testing.T) {
	var h *Helper
	h.Info("this must not panic")

	h2 := NewHelper(nil)
	h2.Error("this must not panic either")
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelFatal: "FATAL",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
