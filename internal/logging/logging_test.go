package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level)
	l.SetOutput(&buf)
	l.sink.now = func() time.Time { return time.Date(2024, 3, 1, 9, 5, 7, 123e6, time.UTC) }
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"verbose", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := LookupLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ParseLevel(tt.in) != tt.want {
			t.Errorf("ParseLevel(%q) = %v", tt.in, ParseLevel(tt.in))
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	l.Info("computed %d bodies", 9)

	want := "09:05:07.123 [INFO] computed 9 bodies\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered messages written: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected two lines, got %q", out)
	}
	if l.Enabled(LevelInfo) || !l.Enabled(LevelError) {
		t.Error("Enabled disagrees with level")
	}

	l.SetLevel(LevelDebug)
	l.Debug("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Errorf("SetLevel did not apply: %q", buf.String())
	}
}

func TestLoggerWith(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	child := l.With("search").With("moon")
	child.Debug("step %.3f", 0.076)

	if !strings.Contains(buf.String(), "[DEBUG] search.moon: step 0.076") {
		t.Errorf("got %q", buf.String())
	}

	// Children share the parent's level
	l.SetLevel(LevelError)
	child.Info("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Error("child ignored parent level change")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing")
	if l.Enabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
}
