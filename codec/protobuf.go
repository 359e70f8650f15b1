package codec

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Protobuf carries values as google.protobuf.Value messages. Numbers are
// doubles, so ints beyond 2^53 and decimal timestamps are not supported.
// The zero value is ready to use.
type Protobuf struct{}

var _ Document = Protobuf{}

func (Protobuf) Name() string { return "protobuf" }

func (Protobuf) Supports(k wire.Kind) bool { return k != wire.KindDecimal }

func (p Protobuf) Marshal(v wire.Value) ([]byte, error) {
	m, err := p.Value(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(m)
}

// Value converts v to a structpb.Value for callers embedding it in their
// own messages.
func (p Protobuf) Value(v wire.Value) (*structpb.Value, error) {
	switch v.Kind() {
	case wire.KindNull:
		return structpb.NewNullValue(), nil
	case wire.KindString:
		s, _ := v.Str()
		return structpb.NewStringValue(s), nil
	case wire.KindInt:
		n, _ := v.Int64()
		if n > maxExactFloat || n < -maxExactFloat {
			return nil, unsupported(p.Name(), n)
		}
		return structpb.NewNumberValue(float64(n)), nil
	case wire.KindArray:
		elems, _ := v.Elems()
		list := &structpb.ListValue{Values: make([]*structpb.Value, len(elems))}
		for i, e := range elems {
			m, err := p.Value(e)
			if err != nil {
				return nil, err
			}
			list.Values[i] = m
		}
		return structpb.NewListValue(list), nil
	}
	return nil, unsupported(p.Name(), v.Kind())
}

func (p Protobuf) Unmarshal(b []byte) (wire.Value, error) {
	m := &structpb.Value{}
	if err := proto.Unmarshal(b, m); err != nil {
		return wire.Value{}, fmt.Errorf("codec: protobuf: %w", err)
	}
	return p.FromValue(m)
}

// FromValue converts a structpb.Value back to a wire.Value.
func (p Protobuf) FromValue(m *structpb.Value) (wire.Value, error) {
	switch k := m.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return wire.Null(), nil
	case *structpb.Value_StringValue:
		return wire.String(k.StringValue), nil
	case *structpb.Value_NumberValue:
		if math.IsNaN(k.NumberValue) {
			return wire.Value{}, unsupported(p.Name(), k.NumberValue)
		}
		return fromFloat(p.Name(), k.NumberValue)
	case *structpb.Value_ListValue:
		vals := k.ListValue.GetValues()
		elems := make([]wire.Value, len(vals))
		for i, e := range vals {
			v, err := p.FromValue(e)
			if err != nil {
				return wire.Value{}, err
			}
			elems[i] = v
		}
		return wire.Array(elems...), nil
	}
	return wire.Value{}, unsupported(p.Name(), fmt.Sprintf("%T", m.GetKind()))
}
