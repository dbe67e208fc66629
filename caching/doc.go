// Package caching is an optional cache over Redis for arbitrary values,
// ranked collections (sorted sets) and geospatial points.
//
// The cache is never a hard dependency. A RedisCache whose client is nil or
// which is disabled by configuration reports Available() == false, and every
// operation then returns an empty result or does nothing, without error.
//
// Components:
//   - Cache: the store-agnostic contract, payload level.
//   - RedisCache: Cache over a shared redis.UniversalClient.
//   - Typed[V]: codec-aware Get/GetMany/Add for one value type.
//   - codec.Codec[V]: (de)serializes V <-> []byte; JSON by default.
//
// Keys are lower-cased (and optionally namespaced) before use, so "User:42"
// and "user:42" name the same entry:
//
//	<namespace>:<lower(key)>
//
// Delete is a soft delete by default: the key is overwritten with an empty
// value that expires after Options.DeleteExpiry (1ms). Reads treat the empty
// value as missing. Set Options.HardDelete to issue DEL instead.
package caching
