package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// captureLogOutput redirects the global logger to a buffer for the duration
// of fn and returns what was written.
func captureLogOutput(t *testing.T, level Level, format Format, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	InitLoggerTo(&buf, level, format)
	defer InitLogger(LevelWarn, FormatText)
	fn()
	return buf.String()
}

func TestLevelFiltering(t *testing.T) {
	out := captureLogOutput(t, LevelWarn, FormatText, func() {
		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")
	})

	if strings.Contains(out, "debug message") {
		t.Error("debug message logged at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message missing")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message missing")
	}
}

func TestDebugLevel(t *testing.T) {
	out := captureLogOutput(t, LevelDebug, FormatText, func() {
		Debug("trace", "key", "value")
	})
	if !strings.Contains(out, "trace") || !strings.Contains(out, "key=value") {
		t.Errorf("debug output missing fields: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	out := captureLogOutput(t, LevelInfo, FormatJSON, func() {
		Info("structured", "count", 3)
	})

	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if record["msg"] != "structured" {
		t.Errorf("msg = %v, want %q", record["msg"], "structured")
	}
	if record["count"] != float64(3) {
		t.Errorf("count = %v, want 3", record["count"])
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Fatal("GetLogger() = nil")
	}
}
