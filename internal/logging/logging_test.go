package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, slog.LevelInfo)

	slog.Debug("hidden")
	slog.Info("status change", "task_id", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "task_id=7") {
		t.Errorf("expected structured attribute in %q", out)
	}
}
