package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/nscache"
)

func TestFieldsAreSortedAndLeveled(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelInfo}))}

	l.Debug("hidden", nscache.Fields{"ns": "x"})
	l.Warn("no snapshot restored", nscache.Fields{"ns": "test", "backend": "primary"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "backend=primary ns=test") {
		t.Fatalf("unexpected output: %q", out)
	}
}
