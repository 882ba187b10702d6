package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/ugen/internal/config"
)

func TestLogger_FileSink(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = logPath

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("processing %s", "users.txt")
	log.Warn("skipping line %d", 7)
	log.Error("cannot read %s", "broken.txt")
	log.Debug(false, "never written")

	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"[INFO] processing users.txt",
		"[WARN] skipping line 7",
		"[ERROR] cannot read broken.txt",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("log file missing %q", want)
		}
	}
	if strings.Contains(text, "never written") {
		t.Error("Debug with verbose=false leaked into log file")
	}
}

func TestLogger_NoFileSink(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("stdout only")
	if err := log.Close(); err != nil {
		t.Errorf("Close without file: %v", err)
	}
}

func TestLogger_CreatesLogDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "run.log")
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = logPath

	log, err := NewLogger(&cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Info("hello")
	log.Close()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
