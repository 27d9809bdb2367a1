package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDebugModeNotNil(t *testing.T) {
	l := New("debug", Options{})
	if l == nil {
		t.Fatalf("expected logger instance in debug mode")
	}
}

func TestNewReleaseModeCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	l := New("release", Options{Dir: dir, Filename: "test.log"})
	if l == nil {
		t.Fatalf("expected logger instance in release mode")
	}
	if _, err := os.Stat(filepath.Join(dir, "test.log")); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestZWithoutInitFallsBack(t *testing.T) {
	saved := L
	L = nil
	defer func() { L = saved }()
	if Z() == nil {
		t.Fatalf("expected fallback logger")
	}
}

func TestPositiveOr(t *testing.T) {
	if got := positiveOr(0, 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := positiveOr(3, 7); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
