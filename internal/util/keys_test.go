package util

import "testing"

func TestQualifiedName(t *testing.T) {
	if got := QualifiedName("kvcache", "Cache", "Store"); got != "kvcache.Cache.Store" {
		t.Fatalf("got %q", got)
	}
	if got := QualifiedName("", "Cache", "Store"); got != "Cache.Store" {
		t.Fatalf("empty package: got %q", got)
	}
}

func TestHistoryKeys(t *testing.T) {
	if got := InputsKey("Cache.Store"); got != "Cache.Store:inputs" {
		t.Fatalf("InputsKey = %q", got)
	}
	if got := OutputsKey("Cache.Store"); got != "Cache.Store:outputs" {
		t.Fatalf("OutputsKey = %q", got)
	}
}
