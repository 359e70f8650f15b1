package jsontime

import (
	"fmt"
	"reflect"
	"time"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Codec encodes and decodes one temporal type for one field. It is
// immutable and safe for concurrent use. Build it with NewCodec or
// Engine.Bind.
type Codec[T any] struct {
	a     Adapter[T]
	r     *resolved
	hooks Hooks
}

// CodecOption tunes NewCodec.
type CodecOption func(*codecOptions)

type codecOptions struct {
	doc   shapeSupport
	hooks Hooks
}

// WithDocument checks the resolved shape against a document model's
// capabilities at bind time.
func WithDocument(doc interface {
	Name() string
	Supports(wire.Kind) bool
}) CodecOption {
	return func(o *codecOptions) { o.doc = doc }
}

// WithHooks attaches hooks fired on parse failures, pattern fallbacks and
// ignored zone modifiers.
func WithHooks(h Hooks) CodecOption {
	return func(o *codecOptions) { o.hooks = h }
}

// NewCodec resolves the field's format against settings once and validates
// it. Every unsupported combination is a *ConfigurationError here, never
// per value. A nil settings means DefaultSettings.
func NewCodec[T any](settings *Settings, a Adapter[T], field FieldFormat, opts ...CodecOption) (*Codec[T], error) {
	r, o, err := bind(settings, a.Kind(), a.subSecond(), a.checkPattern, field, false, opts)
	if err != nil {
		return nil, err
	}
	return &Codec[T]{a: a, r: r, hooks: o.hooks}, nil
}

func bind(settings *Settings, kind Kind, subSecond bool, check func(*Pattern) string, field FieldFormat, key bool, opts []CodecOption) (*resolved, codecOptions, error) {
	o := codecOptions{hooks: NopHooks{}}
	for _, fn := range opts {
		fn(&o)
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	r, err := resolveFormat(kind, subSecond, settings, field, key)
	if err == nil {
		err = r.validate(check, o.doc)
	}
	if err != nil {
		o.hooks.BindRejected(kind, field.Name, err)
		return nil, o, err
	}
	return r, o, nil
}

func (c *Codec[T]) Kind() Kind { return c.r.kind }

// Format is the effective format used for v.
func (c *Codec[T]) Format(v T) EffectiveFormat {
	return c.r.effective(c.encodeZone(v))
}

func (c *Codec[T]) encodeZone(v T) *time.Location {
	z, ignored := c.r.zone(c.a.own(v))
	if ignored {
		c.hooks.ZoneModifierIgnored(c.r.kind)
	}
	return z
}

// decodeZone resolves with own = UTC so zone-less text is read in the zone
// it was written in.
func (c *Codec[T]) decodeZone() *time.Location {
	z, ignored := c.r.zone(time.UTC)
	if ignored {
		c.hooks.ZoneModifierIgnored(c.r.kind)
	}
	return z
}

// Encode renders v in the resolved shape.
func (c *Codec[T]) Encode(v T) wire.Value {
	return selectShape(c.a, c.r, v, c.encodeZone(v))
}

// Decode accepts any wire kind. Null yields the zero value. On failure the
// returned value is the zero value and the error is a *ParseError.
func (c *Codec[T]) Decode(w wire.Value) (T, error) {
	v, tried, fellBack, err := readShape(c.a, c.r, w, c.decodeZone(), c.r.shape.numeric())
	if err != nil {
		var zero T
		raw := w.String()
		c.hooks.ParseFailed(c.r.kind, c.r.field, raw, err)
		return zero, &ParseError{Field: c.r.field, Kind: c.r.kind, Raw: raw, Patterns: tried, Err: err}
	}
	if fellBack {
		c.hooks.PatternFallback(c.r.kind, c.r.field, w.String())
	}
	return v, nil
}

// ValueCodec is a Codec with its type parameter erased, as returned by
// Engine.Bind.
type ValueCodec interface {
	Kind() Kind
	Type() reflect.Type
	EncodeAny(v any) (wire.Value, error)
	DecodeAny(w wire.Value) (any, error)
	FormatAny(v any) (EffectiveFormat, error)
}

var _ ValueCodec = (*Codec[Instant])(nil)

func (c *Codec[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (c *Codec[T]) EncodeAny(v any) (wire.Value, error) {
	t, err := c.cast(v)
	if err != nil {
		return wire.Value{}, err
	}
	return c.Encode(t), nil
}

func (c *Codec[T]) DecodeAny(w wire.Value) (any, error) {
	v, err := c.Decode(w)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Codec[T]) FormatAny(v any) (EffectiveFormat, error) {
	t, err := c.cast(v)
	if err != nil {
		return EffectiveFormat{}, err
	}
	return c.Format(t), nil
}

func (c *Codec[T]) cast(v any) (T, error) {
	switch t := v.(type) {
	case T:
		return t, nil
	case *T:
		if t != nil {
			return *t, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("jsontime: %s codec cannot encode %T", c.r.kind, v)
}
