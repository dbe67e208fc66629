package caching

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noordwind/Coolector-Common/types"
)

// Cache is the store-agnostic cache contract. Keys are case-insensitive.
//
// Every operation degrades instead of failing when the cache is unavailable:
// reads return empty results and writes are no-ops, both with a nil error.
// Values are passed as encoded payloads; use Typed for codec-aware access.
type Cache interface {
	// Available reports whether operations reach the backing store.
	Available() bool

	// GetRaw returns the stored payload; None for a missing key or an empty payload.
	GetRaw(ctx context.Context, key string) (types.Maybe[[]byte], error)
	// GetManyRaw returns payloads aligned with keys; missing keys yield nil slots.
	GetManyRaw(ctx context.Context, keys ...string) ([][]byte, error)
	// AddRaw stores payload under key. expiry <= 0 means no expiry.
	AddRaw(ctx context.Context, key string, payload []byte, expiry time.Duration) error
	// Delete logically removes key.
	Delete(ctx context.Context, key string) error

	// GetSortedSet returns members by descending score, capped to limit when limit > 0.
	GetSortedSet(ctx context.Context, key string, limit int) ([]string, error)
	// AddToSortedSet upserts value with score and, when limit > 0, trims the
	// set to the limit highest-scored members in the same transaction.
	AddToSortedSet(ctx context.Context, key, value string, score int64, limit int) error
	// RemoveFromSortedSet removes value; absent members are ignored.
	RemoveFromSortedSet(ctx context.Context, key, value string) error

	GeoAdd(ctx context.Context, key string, longitude, latitude float64, name string) error
	GeoRemove(ctx context.Context, key, name string) error
	// GetGeoRadius returns points within radius (in the configured unit) of the
	// given coordinate, nearest first.
	GetGeoRadius(ctx context.Context, key string, longitude, latitude, radius float64) ([]GeoResult, error)

	Close(ctx context.Context) error
}

// GeoResult is one point returned by a radius query. Distance is in the
// cache's GeoUnit; coordinates are set only if the store returned them.
type GeoResult struct {
	Name      string   `json:"name"`
	Distance  float64  `json:"distance"`
	Longitude *float64 `json:"longitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
}

// GeoUnit is the distance unit used for radius queries and results.
type GeoUnit string

const (
	Meters     GeoUnit = "m"
	Kilometers GeoUnit = "km"
	Miles      GeoUnit = "mi"
	Feet       GeoUnit = "ft"
)

func (u GeoUnit) valid() bool {
	switch u {
	case Meters, Kilometers, Miles, Feet:
		return true
	}
	return false
}

const defaultDeleteExpiry = time.Millisecond

// Options configure a RedisCache. The zero value yields a cache whose
// availability gate is closed.
type Options struct {
	// Client is the shared store connection. nil closes the availability gate.
	Client redis.UniversalClient
	// CloseClient lets Close release Client; set only if the cache owns it.
	CloseClient bool
	// Disabled closes the availability gate even when Client is set.
	Disabled bool

	Namespace    string        // optional key prefix, e.g. "collectively"
	GeoUnit      GeoUnit       // "" => Meters
	DeleteExpiry time.Duration // soft-delete TTL; 0 => 1ms
	HardDelete   bool          // DEL instead of overwrite + short TTL
	FailOpen     bool          // absorb store errors as if unavailable

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// New builds a RedisCache from opts.
func New(opts Options) (*RedisCache, error) {
	unit := coalesce(opts.GeoUnit, Meters)
	if !unit.valid() {
		return nil, fmt.Errorf("caching: unsupported geo unit %q", opts.GeoUnit)
	}
	if opts.DeleteExpiry < 0 {
		return nil, fmt.Errorf("caching: negative delete expiry %s", opts.DeleteExpiry)
	}
	return &RedisCache{
		rdb:          opts.Client,
		closeClient:  opts.CloseClient,
		enabled:      !opts.Disabled,
		ns:           opts.Namespace,
		geoUnit:      unit,
		deleteExpiry: coalesce(opts.DeleteExpiry, defaultDeleteExpiry),
		hardDelete:   opts.HardDelete,
		failOpen:     opts.FailOpen,
		log:          coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:        coalesce[Hooks](opts.Hooks, NopHooks{}),
	}, nil
}
