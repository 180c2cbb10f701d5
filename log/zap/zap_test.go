package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/kvcache"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	l.Debug("d", kvcache.Fields{"key": "k1"})
	l.Info("i", nil)
	l.Warn("w", kvcache.Fields{"b": 2, "a": 1})
	l.Error("e", kvcache.Fields{"err": errors.New("boom")})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("got %d entries", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Fatalf("entry %d level %v, want %v", i, e.Level, wantLevels[i])
		}
		if e.LoggerName != "kvcache" {
			t.Fatalf("entry %d logger name %q", i, e.LoggerName)
		}
	}
	if got := entries[0].ContextMap()["key"]; got != "k1" {
		t.Fatalf("debug field key=%v", got)
	}
	if f := entries[2].Context; len(f) != 2 || f[0].Key != "a" || f[1].Key != "b" {
		t.Fatalf("fields not sorted: %+v", f)
	}
	if got := entries[3].ContextMap()["err"]; got != "boom" {
		t.Fatalf("error field = %v", got)
	}
}
