package codec

import "google.golang.org/protobuf/proto"

// Protobuf stores proto messages in their binary wire form.
type Protobuf[T proto.Message] struct {
	new func() T
}

// NewProtobuf takes a constructor for an empty message,
// e.g. func() *pb.Place { return &pb.Place{} }.
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
