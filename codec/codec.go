// Package codec holds the document models a temporal wire.Value is written
// to and read from. Each model declares the wire kinds it can carry so that
// an unsupported shape is rejected when a codec is bound, not per value.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Document encodes a wire.Value to bytes and back.
type Document interface {
	// Name identifies the model in configuration errors.
	Name() string
	// Supports reports whether the model carries k without loss.
	Supports(k wire.Kind) bool
	Marshal(v wire.Value) ([]byte, error)
	Unmarshal(b []byte) (wire.Value, error)
}

// ErrUnsupported is returned for values or document nodes a model cannot
// represent as a wire.Value.
var ErrUnsupported = errors.New("codec: unsupported value")

func unsupported(doc string, what any) error {
	return fmt.Errorf("%w: %s cannot carry %v", ErrUnsupported, doc, what)
}

// fromGo converts a decoded generic tree (as produced by msgpack, cbor and
// friends) to a wire.Value.
func fromGo(doc string, x any) (wire.Value, error) {
	switch t := x.(type) {
	case nil:
		return wire.Null(), nil
	case string:
		return wire.String(t), nil
	case int:
		return wire.Int(int64(t)), nil
	case int8:
		return wire.Int(int64(t)), nil
	case int16:
		return wire.Int(int64(t)), nil
	case int32:
		return wire.Int(int64(t)), nil
	case int64:
		return wire.Int(t), nil
	case uint8:
		return wire.Int(int64(t)), nil
	case uint16:
		return wire.Int(int64(t)), nil
	case uint32:
		return wire.Int(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return wire.Value{}, unsupported(doc, t)
		}
		return wire.Int(int64(t)), nil
	case float32:
		return fromFloat(doc, float64(t))
	case float64:
		return fromFloat(doc, t)
	case []any:
		elems := make([]wire.Value, len(t))
		for i, e := range t {
			v, err := fromGo(doc, e)
			if err != nil {
				return wire.Value{}, err
			}
			elems[i] = v
		}
		return wire.Array(elems...), nil
	}
	return wire.Value{}, unsupported(doc, fmt.Sprintf("%T", x))
}

// maxExactFloat is the largest integer every float64 below it represents
// exactly.
const maxExactFloat = 1 << 53

// fromFloat maps integral floats to Int and the rest to Decimal using the
// shortest text that round-trips the float.
func fromFloat(doc string, f float64) (wire.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return wire.Value{}, unsupported(doc, f)
	}
	if f == math.Trunc(f) && math.Abs(f) <= maxExactFloat {
		return wire.Int(int64(f)), nil
	}
	return wire.Decimal(strconv.FormatFloat(f, 'f', -1, 64))
}

// toGo converts v to a generic tree. Decimals are rejected; models that can
// carry them handle KindDecimal before calling toGo.
func toGo(doc string, v wire.Value, elem func(wire.Value) (any, error)) (any, error) {
	switch v.Kind() {
	case wire.KindNull:
		return nil, nil
	case wire.KindString:
		s, _ := v.Str()
		return s, nil
	case wire.KindInt:
		n, _ := v.Int64()
		return n, nil
	case wire.KindArray:
		elems, _ := v.Elems()
		out := make([]any, len(elems))
		for i, e := range elems {
			x, err := elem(e)
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	}
	return nil, unsupported(doc, v.Kind())
}
