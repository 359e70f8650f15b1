package codec

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/unkn0wn-root/jsontime/wire"
)

// JSON is the JSON document model backed by goccy/go-json. Decimals are
// written as bare JSON numbers from their exact text and read back through
// json.Number, so no float rounding happens either way.
// The zero value is ready to use.
type JSON struct{}

var _ Document = JSON{}

func (JSON) Name() string { return "json" }

func (JSON) Supports(wire.Kind) bool { return true }

func (j JSON) Marshal(v wire.Value) ([]byte, error) {
	x, err := j.toJSON(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(x)
}

func (j JSON) toJSON(v wire.Value) (any, error) {
	if v.Kind() == wire.KindDecimal {
		text, _ := v.DecimalText()
		return json.Number(text), nil
	}
	return toGo(j.Name(), v, j.toJSON)
}

func (j JSON) Unmarshal(b []byte) (wire.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return wire.Value{}, fmt.Errorf("codec: json: %w", err)
	}
	if dec.More() {
		return wire.Value{}, fmt.Errorf("codec: json: trailing data after value")
	}
	return j.fromJSON(x)
}

func (j JSON) fromJSON(x any) (wire.Value, error) {
	switch t := x.(type) {
	case json.Number:
		s := string(t)
		if wire.IsIntegerText(s) {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return wire.Int(n), nil
			}
		}
		if wire.IsNumericText(s) {
			return wire.Decimal(s)
		}
		// exponent notation
		f, err := t.Float64()
		if err != nil {
			return wire.Value{}, fmt.Errorf("codec: json: %w", err)
		}
		return fromFloat(j.Name(), f)
	case []any:
		elems := make([]wire.Value, len(t))
		for i, e := range t {
			v, err := j.fromJSON(e)
			if err != nil {
				return wire.Value{}, err
			}
			elems[i] = v
		}
		return wire.Array(elems...), nil
	}
	return fromGo(j.Name(), x)
}
