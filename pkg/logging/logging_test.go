package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Logger().Debug("frame", zap.Int("width", 4))

	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "frame" {
		t.Errorf("Message = %q, want %q", entry.Message, "frame")
	}
	if got := entry.ContextMap()["width"]; got != int64(4) {
		t.Errorf("width = %v, want 4", got)
	}
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)

	Logger().Info("dropped")

	if logs.Len() != 0 {
		t.Errorf("logged %d entries after SetLogger(nil), want 0", logs.Len())
	}
	if Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger reports Error level enabled")
	}
}

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		l, err := New(verbose)
		if err != nil {
			t.Fatalf("New(%v) error = %v", verbose, err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != verbose {
			t.Errorf("New(%v) debug enabled = %v, want %v", verbose, got, verbose)
		}
	}
}
