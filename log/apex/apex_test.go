package apex

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/unkn0wn-root/kvcache"
)

func TestForwardsToHandler(t *testing.T) {
	h := memory.New()
	l := Logger{L: &log.Logger{Handler: h, Level: log.DebugLevel}}

	l.Debug("d", kvcache.Fields{"key": "k1"})
	l.Warn("w", nil)

	if len(h.Entries) != 2 {
		t.Fatalf("entries = %d", len(h.Entries))
	}
	if e := h.Entries[0]; e.Level != log.DebugLevel || e.Message != "d" || e.Fields["key"] != "k1" {
		t.Fatalf("first entry %+v", e)
	}
	if e := h.Entries[1]; e.Level != log.WarnLevel || e.Message != "w" {
		t.Fatalf("second entry %+v", e)
	}
}
