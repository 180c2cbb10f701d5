package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/kvcache"
)

func TestForwardsLevelAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("store flushed", kvcache.Fields{"recorder": true})
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.DebugLevel || e.Message != "store flushed" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Data["recorder"] != true || e.Data["component"] != "kvcache" {
		t.Fatalf("fields = %v", e.Data)
	}

	l.Error("bad", nil)
	if e := hook.LastEntry(); e.Level != logrus.ErrorLevel || len(e.Data) != 1 {
		t.Fatalf("error entry %+v", e)
	}
	if len(hook.AllEntries()) != 2 {
		t.Fatalf("entries = %d", len(hook.AllEntries()))
	}
}
