package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	lv := &slog.LevelVar{}
	logger := NewWriter(&buf, Options{Level: lv, NoTime: true})

	logger.Debug("hidden")
	logger.Info("Hey?", "fn", "hello_world", "empty", "")
	lv.Set(slog.LevelDebug)
	logger.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "INF Hey? fn=hello_world") {
		t.Errorf("missing info line: %q", out)
	}
	if strings.Contains(out, "empty=") {
		t.Errorf("empty attribute not dropped: %q", out)
	}
	if !strings.Contains(out, "DBG shown") {
		t.Errorf("missing debug line after level change: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected color codes: %q", out)
	}
}
