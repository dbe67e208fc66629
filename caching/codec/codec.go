// Package codec converts cached values to and from the payload bytes stored
// under a cache key.
//
// An empty payload is never handed to a codec: the typed cache layer treats it
// as "no value" before decoding.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// NullChecker is implemented by codecs whose format has a null literal.
// A null payload is what a nil value encodes to; the typed cache reports it
// as absent instead of decoding it into a present zero value.
type NullChecker interface {
	IsNull([]byte) bool
}

// IsNull reports whether c recognises b as its null literal.
// Codecs without a null literal never do.
func IsNull[V any](c Codec[V], b []byte) bool {
	n, ok := c.(NullChecker)
	return ok && n.IsNull(b)
}
