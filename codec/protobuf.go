package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

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

// Struct stores documents as google.protobuf.Struct. Values are limited to
// what structpb accepts: numbers become float64 on decode.
type Struct struct{}

var _ Doc = Struct{}

var structMsg = NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })

func (Struct) Encode(m map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return structMsg.Encode(s)
}

func (Struct) Decode(b []byte) (map[string]any, error) {
	s, err := structMsg.Decode(b)
	if err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}
