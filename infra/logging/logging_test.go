package logging

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_WritesRecordsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "feed.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Error("fetch failed", "resource", "posts", "err", errors.New("boom"))
	logger.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "resource=posts") || !strings.Contains(out, "err=boom") {
		t.Fatalf("expected structured attrs in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %q", out)
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	Discard().Error("dropped", "k", "v")
}
