package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record passed a warn filter: %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "msg=shown") {
		t.Fatalf("warn record missing: %q", out)
	}
	if !strings.Contains(out, "ts=") {
		t.Fatalf("timestamp missing: %q", out)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty")
	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
