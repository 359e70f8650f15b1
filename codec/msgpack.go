package codec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Msgpack is the MessagePack document model backed by vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// MessagePack has no exact decimal type, so decimal timestamps are not
// supported; binding a NumberFloat shape against it fails. Floats found in
// input are still read, through their shortest round-trip text.
type Msgpack struct{}

var _ Document = Msgpack{}

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Supports(k wire.Kind) bool { return k != wire.KindDecimal }

func (m Msgpack) Marshal(v wire.Value) ([]byte, error) {
	x, err := m.toMsgpack(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(x)
}

func (m Msgpack) toMsgpack(v wire.Value) (any, error) {
	return toGo(m.Name(), v, m.toMsgpack)
}

func (m Msgpack) Unmarshal(b []byte) (wire.Value, error) {
	var x any
	if err := msgpack.Unmarshal(b, &x); err != nil {
		return wire.Value{}, fmt.Errorf("codec: msgpack: %w", err)
	}
	return fromGo(m.Name(), x)
}
