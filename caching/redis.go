package caching

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noordwind/Coolector-Common/caching/internal/keys"
	"github.com/noordwind/Coolector-Common/types"
)

// RedisCache implements Cache on top of a shared Redis connection.
// It holds no per-key state; Redis is the only source of truth.
type RedisCache struct {
	rdb         redis.UniversalClient
	closeClient bool
	enabled     bool

	ns           string
	geoUnit      GeoUnit
	deleteExpiry time.Duration
	hardDelete   bool
	failOpen     bool

	log   Logger
	hooks Hooks
}

var _ Cache = (*RedisCache)(nil)

func (c *RedisCache) Available() bool { return c.rdb != nil && c.enabled }

func (c *RedisCache) GetRaw(ctx context.Context, key string) (types.Maybe[[]byte], error) {
	if !c.gate("get") {
		return types.None[[]byte](), nil
	}
	k := c.key(key)
	b, err := c.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.None[[]byte](), nil
	}
	if err != nil {
		return types.None[[]byte](), c.fail("get", k, err)
	}
	if len(b) == 0 {
		return types.None[[]byte](), nil
	}
	return types.Some(b), nil
}

func (c *RedisCache) GetManyRaw(ctx context.Context, keyList ...string) ([][]byte, error) {
	if !c.gate("get_many") || len(keyList) == 0 {
		return [][]byte{}, nil
	}
	vals, err := c.rdb.MGet(ctx, keys.NormalizeAll(c.ns, keyList)...).Result()
	if err != nil {
		return [][]byte{}, c.fail("get_many", "", err)
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		switch vv := v.(type) {
		case string:
			out[i] = []byte(vv)
		case []byte:
			out[i] = vv
		}
	}
	return out, nil
}

func (c *RedisCache) AddRaw(ctx context.Context, key string, payload []byte, expiry time.Duration) error {
	if !c.gate("add") {
		return nil
	}
	if expiry < 0 {
		expiry = 0 // 0 => no expiry; negative values would mean KEEPTTL to go-redis
	}
	k := c.key(key)
	return c.fail("add", k, c.rdb.Set(ctx, k, payload, expiry).Err())
}

// Delete overwrites key with an empty value that expires after DeleteExpiry.
// Until then GetRaw reports the key as missing, but the entry still exists in
// Redis. With Options.HardDelete the key is removed with DEL instead.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if !c.gate("delete") {
		return nil
	}
	k := c.key(key)
	if c.hardDelete {
		return c.fail("delete", k, c.rdb.Del(ctx, k).Err())
	}
	if err := c.rdb.Set(ctx, k, "", c.deleteExpiry).Err(); err != nil {
		return c.fail("delete", k, err)
	}
	c.hooks.SoftDeleted(k)
	return nil
}

func (c *RedisCache) GetSortedSet(ctx context.Context, key string, limit int) ([]string, error) {
	if !c.gate("get_sorted_set") {
		return []string{}, nil
	}
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	k := c.key(key)
	members, err := c.rdb.ZRevRange(ctx, k, 0, stop).Result()
	if err != nil {
		return []string{}, c.fail("get_sorted_set", k, err)
	}
	return members, nil
}

func (c *RedisCache) AddToSortedSet(ctx context.Context, key, value string, score int64, limit int) error {
	if !c.gate("add_to_sorted_set") {
		return nil
	}
	k := c.key(key)
	var trim *redis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, k, redis.Z{Score: float64(score), Member: value})
		if limit > 0 {
			// ranks are ascending by score: drop everything below the top `limit`
			trim = p.ZRemRangeByRank(ctx, k, 0, -int64(limit)-1)
		}
		return nil
	})
	if err != nil {
		return c.fail("add_to_sorted_set", k, err)
	}
	if trim != nil && trim.Val() > 0 {
		c.log.Debug("sorted set trimmed", Fields{"key": k, "removed": trim.Val(), "limit": limit})
		c.hooks.SortedSetTrimmed(k, trim.Val())
	}
	return nil
}

func (c *RedisCache) RemoveFromSortedSet(ctx context.Context, key, value string) error {
	if !c.gate("remove_from_sorted_set") {
		return nil
	}
	k := c.key(key)
	return c.fail("remove_from_sorted_set", k, c.rdb.ZRem(ctx, k, value).Err())
}

func (c *RedisCache) GeoAdd(ctx context.Context, key string, longitude, latitude float64, name string) error {
	if !c.gate("geo_add") {
		return nil
	}
	k := c.key(key)
	err := c.rdb.GeoAdd(ctx, k, &redis.GeoLocation{
		Name:      name,
		Longitude: longitude,
		Latitude:  latitude,
	}).Err()
	return c.fail("geo_add", k, err)
}

// GeoRemove deletes a point. Geo collections are sorted sets, so this is a ZREM.
func (c *RedisCache) GeoRemove(ctx context.Context, key, name string) error {
	if !c.gate("geo_remove") {
		return nil
	}
	k := c.key(key)
	return c.fail("geo_remove", k, c.rdb.ZRem(ctx, k, name).Err())
}

func (c *RedisCache) GetGeoRadius(ctx context.Context, key string, longitude, latitude, radius float64) ([]GeoResult, error) {
	if !c.gate("get_geo_radius") {
		return []GeoResult{}, nil
	}
	k := c.key(key)
	locs, err := c.rdb.GeoRadius(ctx, k, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    radius,
		Unit:      string(c.geoUnit),
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return []GeoResult{}, c.fail("get_geo_radius", k, err)
	}
	out := make([]GeoResult, 0, len(locs))
	for _, l := range locs {
		lon, lat := l.Longitude, l.Latitude
		out = append(out, GeoResult{
			Name:      l.Name,
			Distance:  l.Dist,
			Longitude: &lon,
			Latitude:  &lat,
		})
	}
	return out, nil
}

// Close releases the client only when the cache owns it.
// Safe to call multiple times.
func (c *RedisCache) Close(context.Context) error {
	if c.closeClient && c.rdb != nil {
		if err := c.rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			return err
		}
	}
	return nil
}

func (c *RedisCache) key(k string) string { return keys.Normalize(c.ns, k) }

func (c *RedisCache) gate(op string) bool {
	if c.Available() {
		return true
	}
	c.hooks.Unavailable(op)
	return false
}

// fail reports a store error. Under FailOpen the error is logged and dropped.
func (c *RedisCache) fail(op, storageKey string, err error) error {
	if err == nil {
		return nil
	}
	c.hooks.StoreError(op, storageKey, err)
	if c.failOpen {
		c.log.Warn("cache store error absorbed", Fields{"op": op, "key": storageKey, "err": err})
		return nil
	}
	return &StoreError{Op: op, Key: storageKey, Err: err}
}
