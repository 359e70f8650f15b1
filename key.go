package jsontime

import (
	"fmt"
	"reflect"
	"time"

	"github.com/unkn0wn-root/jsontime/wire"
)

// KeyCodec is the map-key variant of Codec. Keys are always text; with key
// timestamps enabled they are numeric-looking text ("1704080172870").
// Pattern and zone precedence are the same as for values, driven by the key
// features.
type KeyCodec[T any] struct {
	a     Adapter[T]
	r     *resolved
	hooks Hooks
}

// NewKeyCodec binds a key codec. An Array shape is a *ConfigurationError.
func NewKeyCodec[T any](settings *Settings, a Adapter[T], field FieldFormat, opts ...CodecOption) (*KeyCodec[T], error) {
	r, o, err := bind(settings, a.Kind(), a.subSecond(), a.checkPattern, field, true, opts)
	if err != nil {
		return nil, err
	}
	return &KeyCodec[T]{a: a, r: r, hooks: o.hooks}, nil
}

func (c *KeyCodec[T]) Kind() Kind { return c.r.kind }

func (c *KeyCodec[T]) Format(v T) EffectiveFormat {
	return c.r.effective(c.zone(c.a.own(v)))
}

func (c *KeyCodec[T]) zone(own *time.Location) *time.Location {
	z, ignored := c.r.zone(own)
	if ignored {
		c.hooks.ZoneModifierIgnored(c.r.kind)
	}
	return z
}

// Encode never fails for a bound codec; the error is kept for symmetry with
// document encoders.
func (c *KeyCodec[T]) Encode(v T) (string, error) {
	if c.r.shape.numeric() {
		return numericText(c.a, c.r, v), nil
	}
	return formatText(c.a, c.r, v, c.zone(c.a.own(v))), nil
}

func (c *KeyCodec[T]) Decode(key string) (T, error) {
	v, tried, fellBack, err := readText(c.a, c.r, key, c.zone(time.UTC), c.r.shape.numeric())
	if err != nil {
		var zero T
		raw := wire.String(key).String()
		c.hooks.ParseFailed(c.r.kind, c.r.field, raw, err)
		return zero, &ParseError{Field: c.r.field, Kind: c.r.kind, Raw: raw, Patterns: tried, Err: err}
	}
	if fellBack {
		c.hooks.PatternFallback(c.r.kind, c.r.field, key)
	}
	return v, nil
}

// KeyValueCodec is a KeyCodec with its type parameter erased.
type KeyValueCodec interface {
	Kind() Kind
	Type() reflect.Type
	EncodeKeyAny(v any) (string, error)
	DecodeKeyAny(key string) (any, error)
}

var _ KeyValueCodec = (*KeyCodec[Instant])(nil)

func (c *KeyCodec[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (c *KeyCodec[T]) EncodeKeyAny(v any) (string, error) {
	t, ok := v.(T)
	if !ok {
		if p, isPtr := v.(*T); isPtr && p != nil {
			t, ok = *p, true
		}
	}
	if !ok {
		return "", fmt.Errorf("jsontime: %s key codec cannot encode %T", c.r.kind, v)
	}
	return c.Encode(t)
}

func (c *KeyCodec[T]) DecodeKeyAny(key string) (any, error) {
	v, err := c.Decode(key)
	if err != nil {
		return nil, err
	}
	return v, nil
}
