package promhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/kvcache"
	"github.com/unkn0wn-root/kvcache/provider/memory"
)

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := New(reg, "test")
	require.NoError(t, err)

	h.Flushed()
	h.Stored("a", 3)
	h.Stored("b", 4)
	h.Miss("c")
	h.DecodeFailed("d", errors.New("x"))
	h.ProviderSetRejected("e")
	h.RecorderUnavailable("kvcache.Cache.Store")

	assert.Equal(t, 1.0, testutil.ToFloat64(h.flushes))
	assert.Equal(t, 2.0, testutil.ToFloat64(h.stores))
	assert.Equal(t, 7.0, testutil.ToFloat64(h.storedBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.decodeFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.rejects))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.recorderMissing.WithLabelValues("kvcache.Cache.Store")))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)
	_, err = New(reg, "dup")
	assert.Error(t, err)
}

func TestWiredIntoCache(t *testing.T) {
	ctx := context.Background()
	h, err := New(nil, "")
	require.NoError(t, err)

	c, err := kvcache.New(ctx, kvcache.Options{Provider: memory.New(), Hooks: h})
	require.NoError(t, err)
	defer c.Close(ctx)

	key, err := c.Store(ctx, "hello")
	require.NoError(t, err)
	_, ok, err := c.GetStr(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, _ = c.GetStr(ctx, "nope")
	require.False(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.flushes))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.stores))
	assert.Equal(t, 5.0, testutil.ToFloat64(h.storedBytes))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.misses))
}
