package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet logger drops debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("debug message")
		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}

		logger.Warn("warn message", "animal", "Felix")
		output := buf.String()
		if !strings.Contains(output, "warn message") {
			t.Errorf("expected warn message in output, got %q", output)
		}
		if !strings.Contains(output, "animal=Felix") {
			t.Errorf("expected attribute in output, got %q", output)
		}
	})

	t.Run("verbose logger keeps debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)
		logger.Debug("writing report", "count", 3)

		output := buf.String()
		if !strings.Contains(output, "level=DEBUG") {
			t.Errorf("expected debug level in output, got %q", output)
		}
		if !strings.Contains(output, "count=3") {
			t.Errorf("expected attribute in output, got %q", output)
		}
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := Discard()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	// Must not panic.
	logger.Error("dropped", "key", "value")
}
