// Package asynchook moves caching.Hooks calls off the request path.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{DecodeFailedEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := caching.New(caching.Options{Client: rdb, Hooks: hooks})
//
// Events are dropped when the queue is full or the hooks are closed.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/noordwind/Coolector-Common/caching"
)

type Hooks struct {
	inner   caching.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64

	mu     sync.RWMutex // guards closed against sends racing close(q)
	closed bool
}

var _ caching.Hooks = (*Hooks)(nil)

func New(inner caching.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Hook calls after Close
// are counted as dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full
// or the hooks were already closed.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) Unavailable(op string) { h.try(func() { h.inner.Unavailable(op) }) }
func (h *Hooks) SoftDeleted(k string)  { h.try(func() { h.inner.SoftDeleted(k) }) }
func (h *Hooks) DecodeFailed(k string, err error) {
	h.try(func() { h.inner.DecodeFailed(k, err) })
}
func (h *Hooks) StoreError(op, k string, err error) {
	h.try(func() { h.inner.StoreError(op, k, err) })
}
func (h *Hooks) SortedSetTrimmed(k string, removed int64) {
	h.try(func() { h.inner.SortedSetTrimmed(k, removed) })
}
