package codec

import (
	"unicode/utf8"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Text is the model for map keys and other plain-text slots: the bytes are
// the string itself. Only String values are supported.
type Text struct{}

var _ Document = Text{}

func (Text) Name() string { return "text" }

func (Text) Supports(k wire.Kind) bool { return k == wire.KindString }

func (t Text) Marshal(v wire.Value) ([]byte, error) {
	s, ok := v.Str()
	if !ok {
		return nil, unsupported(t.Name(), v.Kind())
	}
	return []byte(s), nil
}

// Unmarshal returns b as a String value. By convention this assumes UTF-8.
func (t Text) Unmarshal(b []byte) (wire.Value, error) {
	if !utf8.Valid(b) {
		return wire.Value{}, unsupported(t.Name(), "invalid UTF-8")
	}
	return wire.String(string(b)), nil
}
