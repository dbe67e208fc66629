package codec

import "fmt"

// LimitCodec rejects payloads longer than MaxDecode bytes before they reach
// Inner. A rejected payload is reported as a decode error, which the cache
// turns into a miss. MaxDecode <= 0 disables the check.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}

func (c LimitCodec[V]) IsNull(b []byte) bool { return IsNull(c.Inner, b) }
