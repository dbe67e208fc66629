// Package promhooks exports caching.Hooks events as Prometheus counters.
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noordwind/Coolector-Common/caching"
)

type Hooks struct {
	unavailable  *prometheus.CounterVec
	storeErrors  *prometheus.CounterVec
	decodeFailed prometheus.Counter
	trimmed      prometheus.Counter
	softDeletes  prometheus.Counter
}

var _ caching.Hooks = (*Hooks)(nil)

// New creates the counters under namespace and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) (*Hooks, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &Hooks{
		unavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_unavailable_total",
			Help:      "Cache operations skipped because the cache was unavailable.",
		}, []string{"op"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_store_errors_total",
			Help:      "Errors returned by the backing store.",
		}, []string{"op"}),
		decodeFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_decode_failures_total",
			Help:      "Cached payloads that could not be decoded.",
		}),
		trimmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_sorted_set_trimmed_total",
			Help:      "Members dropped from bounded sorted sets.",
		}),
		softDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_soft_deletes_total",
			Help:      "Keys removed by overwrite with a short expiry.",
		}),
	}
	for _, c := range []prometheus.Collector{h.unavailable, h.storeErrors, h.decodeFailed, h.trimmed, h.softDeletes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) Unavailable(op string)              { h.unavailable.WithLabelValues(op).Inc() }
func (h *Hooks) DecodeFailed(string, error)         { h.decodeFailed.Inc() }
func (h *Hooks) StoreError(op, _ string, _ error)   { h.storeErrors.WithLabelValues(op).Inc() }
func (h *Hooks) SortedSetTrimmed(_ string, n int64) { h.trimmed.Add(float64(n)) }
func (h *Hooks) SoftDeleted(string)                 { h.softDeletes.Inc() }
