package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_Console(t *testing.T) {
	for _, mode := range []string{"development", "production"} {
		log, err := New(mode, "")
		if err != nil {
			t.Fatalf("New(%q) error = %v", mode, err)
		}
		if log == nil {
			t.Fatalf("New(%q) returned nil", mode)
		}
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salon.log")

	log, err := New("production", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("booting")
	_ = log.Sync()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}
