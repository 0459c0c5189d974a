package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: false, ConfigDir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger was not set")
	}

	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestInit_WritesToLogFile(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: false, ConfigDir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Warn("something looks off", "key", "value")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "proudly.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected the warning to be written to the log file")
	}
}

func TestLogHelpers_NilLoggerIsSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
}
