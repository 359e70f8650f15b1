package codec

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/jsontime/wire"
)

// tagDecimalFraction is RFC 8949 tag 4: [exponent, mantissa].
const tagDecimalFraction = 4

// CBOR is the CBOR document model backed by fxamacker/cbor. Decimals are
// written as decimal fractions with exponent -9, so nanoseconds survive
// exactly.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing/content addressing).
// Otherwise PreferredUnsortedEncOptions are used (sensible defaults).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Document = CBOR{}

// NewCBOR constructs a CBOR document model.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.BigIntConvert = cbor.BigIntConvertShortest

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (CBOR) Name() string { return "cbor" }

func (CBOR) Supports(wire.Kind) bool { return true }

func (c CBOR) Marshal(v wire.Value) ([]byte, error) {
	x, err := c.toCBOR(v)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(x)
}

func (c CBOR) toCBOR(v wire.Value) (any, error) {
	if v.Kind() != wire.KindDecimal {
		return toGo(c.Name(), v, c.toCBOR)
	}
	text, _ := v.DecimalText()
	sec, nano, err := wire.ParseSeconds(text)
	if err != nil {
		return nil, err
	}
	m := new(big.Int).Mul(big.NewInt(sec), big.NewInt(1_000_000_000))
	m.Add(m, big.NewInt(int64(nano)))
	return cbor.Tag{Number: tagDecimalFraction, Content: []any{int64(-9), m}}, nil
}

func (c CBOR) Unmarshal(b []byte) (wire.Value, error) {
	var x any
	if err := c.dec.Unmarshal(b, &x); err != nil {
		return wire.Value{}, fmt.Errorf("codec: cbor: %w", err)
	}
	return c.fromCBOR(x)
}

func (c CBOR) fromCBOR(x any) (wire.Value, error) {
	switch t := x.(type) {
	case cbor.Tag:
		if t.Number != tagDecimalFraction {
			return wire.Value{}, unsupported(c.Name(), fmt.Sprintf("tag %d", t.Number))
		}
		return c.decimalFraction(t.Content)
	case big.Int:
		return c.bigInt(&t)
	case *big.Int:
		return c.bigInt(t)
	case []any:
		elems := make([]wire.Value, len(t))
		for i, e := range t {
			v, err := c.fromCBOR(e)
			if err != nil {
				return wire.Value{}, err
			}
			elems[i] = v
		}
		return wire.Array(elems...), nil
	}
	return fromGo(c.Name(), x)
}

func (c CBOR) bigInt(n *big.Int) (wire.Value, error) {
	if !n.IsInt64() {
		return wire.Value{}, unsupported(c.Name(), n)
	}
	return wire.Int(n.Int64()), nil
}

var (
	bigTen  = big.NewInt(10)
	bigNano = big.NewInt(1_000_000_000)
)

// decimalFraction converts [exponent, mantissa] to seconds with nine
// fractional digits, flooring finer precision.
func (c CBOR) decimalFraction(content any) (wire.Value, error) {
	pair, ok := content.([]any)
	if !ok || len(pair) != 2 {
		return wire.Value{}, unsupported(c.Name(), "malformed decimal fraction")
	}
	exp, ok := toBig(pair[0])
	if !ok || !exp.IsInt64() || exp.Int64() < -64 || exp.Int64() > 64 {
		return wire.Value{}, unsupported(c.Name(), "decimal fraction exponent")
	}
	m, ok := toBig(pair[1])
	if !ok {
		return wire.Value{}, unsupported(c.Name(), "decimal fraction mantissa")
	}
	shift := exp.Int64() + 9
	scale := new(big.Int).Exp(bigTen, big.NewInt(abs(shift)), nil)
	if shift >= 0 {
		m.Mul(m, scale)
	} else {
		m.Div(m, scale) // Euclidean; floors for a positive divisor
	}
	sec, nano := new(big.Int).DivMod(m, bigNano, new(big.Int))
	if !sec.IsInt64() {
		return wire.Value{}, unsupported(c.Name(), "decimal fraction out of range")
	}
	return wire.Seconds(sec.Int64(), int32(nano.Int64())), nil
}

func toBig(x any) (*big.Int, bool) {
	switch t := x.(type) {
	case int64:
		return big.NewInt(t), true
	case uint64:
		return new(big.Int).SetUint64(t), true
	case big.Int:
		return new(big.Int).Set(&t), true
	case *big.Int:
		return new(big.Int).Set(t), true
	}
	return nil, false
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
