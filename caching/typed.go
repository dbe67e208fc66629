package caching

import (
	"context"
	"time"

	"github.com/noordwind/Coolector-Common/caching/codec"
	"github.com/noordwind/Coolector-Common/types"
)

// Typed is a codec-aware view of a Cache for values of type V.
//
//	users := caching.JSON[User](c)
//	_ = users.Add(ctx, "user:42", User{Name: "Ada"}, time.Hour)
//	u, _ := users.Get(ctx, "User:42") // same entry
//
// Payloads that fail to decode are treated as absent, never as errors.
type Typed[V any] struct {
	cache Cache
	codec codec.Codec[V]
	log   Logger
	hooks Hooks
}

// TypedOption customises a Typed view.
type TypedOption func(*typedOptions)

type typedOptions struct {
	log   Logger
	hooks Hooks
}

func WithTypedLogger(l Logger) TypedOption { return func(o *typedOptions) { o.log = l } }
func WithTypedHooks(h Hooks) TypedOption   { return func(o *typedOptions) { o.hooks = h } }

// NewTyped binds c to cd. When c is a *RedisCache and no logger or hooks are
// given, the cache's own are reused.
func NewTyped[V any](c Cache, cd codec.Codec[V], opts ...TypedOption) *Typed[V] {
	var o typedOptions
	if rc, ok := c.(*RedisCache); ok {
		o.log, o.hooks = rc.log, rc.hooks
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Typed[V]{
		cache: c,
		codec: cd,
		log:   coalesce[Logger](o.log, NopLogger{}),
		hooks: coalesce[Hooks](o.hooks, NopHooks{}),
	}
}

// JSON returns a Typed view using the JSON codec.
func JSON[V any](c Cache, opts ...TypedOption) *Typed[V] {
	return NewTyped[V](c, codec.JSON[V]{}, opts...)
}

// Get fetches and decodes key. None when the key is missing, the payload is
// empty or the codec's null literal, the payload does not decode, or the
// cache is unavailable.
func (t *Typed[V]) Get(ctx context.Context, key string) (types.Maybe[V], error) {
	raw, err := t.cache.GetRaw(ctx, key)
	if err != nil {
		return types.None[V](), err
	}
	b, ok := raw.Value()
	if !ok || codec.IsNull(t.codec, b) {
		return types.None[V](), nil
	}
	v, ok := t.decode(key, b)
	if !ok {
		return types.None[V](), nil
	}
	return types.Some(v), nil
}

// GetMany fetches keys in one round-trip. The result is aligned with keys;
// slots for missing, empty, null or undecodable entries hold the zero value of V.
// An empty key list returns an empty slice without contacting the store.
func (t *Typed[V]) GetMany(ctx context.Context, keys ...string) ([]V, error) {
	if len(keys) == 0 {
		return []V{}, nil
	}
	raws, err := t.cache.GetManyRaw(ctx, keys...)
	if err != nil {
		return []V{}, err
	}
	out := make([]V, min(len(raws), len(keys)))
	for i := range out {
		b := raws[i]
		if len(b) == 0 || codec.IsNull(t.codec, b) {
			continue
		}
		out[i], _ = t.decode(keys[i], b)
	}
	return out, nil
}

// Add encodes value and stores it under key. expiry <= 0 means no expiry.
// Encoding errors are returned; nothing is written in that case.
func (t *Typed[V]) Add(ctx context.Context, key string, value V, expiry time.Duration) error {
	if !t.cache.Available() {
		return t.cache.AddRaw(ctx, key, nil, expiry)
	}
	b, err := t.codec.Encode(value)
	if err != nil {
		return err
	}
	return t.cache.AddRaw(ctx, key, b, expiry)
}

func (t *Typed[V]) Delete(ctx context.Context, key string) error {
	return t.cache.Delete(ctx, key)
}

func (t *Typed[V]) decode(key string, b []byte) (V, bool) {
	v, err := t.codec.Decode(b)
	if err != nil {
		var zero V
		t.log.Debug("cache payload decode failed", Fields{"key": key, "err": err})
		t.hooks.DecodeFailed(key, err)
		return zero, false
	}
	return v, true
}
