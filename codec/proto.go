package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Proto serializes protobuf messages. Values passed to Marshal/Unmarshal must
// implement proto.Message; anything else is rejected at runtime since the
// Codec contract is untyped.
type Proto struct{}

var _ Codec = Proto{}

func (Proto) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("codec: proto marshal: %T does not implement proto.Message", v)
	}
	return proto.Marshal(m)
}

func (Proto) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("codec: proto unmarshal: %T does not implement proto.Message", v)
	}
	return proto.Unmarshal(data, m)
}

func (Proto) Name() string { return "proto" }
