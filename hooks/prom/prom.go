// Package promhooks counts cache events with Prometheus counters.
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/kvcache"
)

type Hooks struct {
	flushes         prometheus.Counter
	stores          prometheus.Counter
	storedBytes     prometheus.Counter
	misses          prometheus.Counter
	decodeFailures  prometheus.Counter
	rejects         prometheus.Counter
	recorderMissing *prometheus.CounterVec
}

var _ kvcache.Hooks = (*Hooks)(nil)

// New creates the counters under namespace and registers them with reg.
// A nil reg skips registration.
func New(reg prometheus.Registerer, namespace string) (*Hooks, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kvcache",
			Name:      name,
			Help:      help,
		})
	}
	h := &Hooks{
		flushes:        counter("flushes_total", "Store flushes performed on cache creation."),
		stores:         counter("stores_total", "Values written."),
		storedBytes:    counter("stored_bytes_total", "Encoded bytes written."),
		misses:         counter("misses_total", "Reads that found no value."),
		decodeFailures: counter("decode_failures_total", "Values a decode function rejected."),
		rejects:        counter("provider_set_rejected_total", "Writes the provider dropped."),
		recorderMissing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kvcache",
			Name:      "recorder_unavailable_total",
			Help:      "Instrumentation requests on caches without a call recorder.",
		}, []string{"method"}),
	}
	if reg == nil {
		return h, nil
	}
	for _, c := range []prometheus.Collector{
		h.flushes, h.stores, h.storedBytes, h.misses,
		h.decodeFailures, h.rejects, h.recorderMissing,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) Flushed() { h.flushes.Inc() }

func (h *Hooks) Stored(_ string, size int) {
	h.stores.Inc()
	h.storedBytes.Add(float64(size))
}

func (h *Hooks) Miss(string)                  { h.misses.Inc() }
func (h *Hooks) DecodeFailed(string, error)   { h.decodeFailures.Inc() }
func (h *Hooks) ProviderSetRejected(string)   { h.rejects.Inc() }
func (h *Hooks) RecorderUnavailable(m string) { h.recorderMissing.WithLabelValues(m).Inc() }
