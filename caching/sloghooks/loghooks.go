package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/noordwind/Coolector-Common/caching"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	UnavailableEvery  uint64
	DecodeFailedEvery uint64
	TrimmedEvery      uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	unavailableCtr  atomic.Uint64
	decodeFailedCtr atomic.Uint64
	trimmedCtr      atomic.Uint64
}

var _ caching.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Unavailable(op string) {
	if h.l == nil || !sample(h.opts.UnavailableEvery, &h.unavailableCtr) {
		return
	}
	h.l.Debug("cache.unavailable", "op", op)
}

func (h *Hooks) DecodeFailed(key string, err error) {
	if h.l == nil || !sample(h.opts.DecodeFailedEvery, &h.decodeFailedCtr) {
		return
	}
	h.l.Warn("cache.decode_failed",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) StoreError(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("cache.store_error",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) SortedSetTrimmed(storageKey string, removed int64) {
	if h.l == nil || !sample(h.opts.TrimmedEvery, &h.trimmedCtr) {
		return
	}
	h.l.Debug("cache.sorted_set_trimmed",
		"key", h.redact(storageKey),
		"removed", removed)
}

func (h *Hooks) SoftDeleted(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Debug("cache.soft_deleted", "key", h.redact(storageKey))
}
