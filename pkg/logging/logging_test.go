package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	quiet, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled without verbose")
	}
	if !quiet.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be enabled")
	}

	loud, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	if !loud.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be enabled with verbose")
	}
}
