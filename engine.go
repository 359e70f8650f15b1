package jsontime

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/unkn0wn-root/jsontime/codec"
	"github.com/unkn0wn-root/jsontime/internal/util"
	"github.com/unkn0wn-root/jsontime/wire"
)

// bindingKey holds the zone by identity: distinct locations may share a
// name.
type bindingKey struct {
	t     reflect.Type
	key   bool
	field string // FieldFormat.descriptor
	zone  *time.Location
}

type engine struct {
	settings *Settings
	doc      codec.Document
	registry *Registry
	log      Logger
	hooks    Hooks

	bindings sync.Map // bindingKey -> ValueCodec | KeyValueCodec
}

func newEngine(opts Options) (*engine, error) {
	e := &engine{
		settings: opts.Settings,
		doc:      opts.Document,
		registry: opts.Registry,
	}

	// defaults
	e.log = coalesce[Logger](opts.Logger, NopLogger{})
	e.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if e.settings == nil {
		e.settings = DefaultSettings()
	}
	if e.doc == nil {
		e.doc = codec.JSON{}
	}
	if e.registry == nil {
		e.registry = DefaultRegistry()
	}
	if opts.MaxDecode < 0 {
		return nil, fmt.Errorf("jsontime: MaxDecode must be >= 0, got %d", opts.MaxDecode)
	}
	if opts.MaxDecode > 0 {
		e.doc = codec.Limit{Inner: e.doc, MaxDecode: opts.MaxDecode}
	}

	e.log.Debug("engine ready", Fields{
		"document": e.doc.Name(),
		"features": e.settings.Features().String(),
	})
	return e, nil
}

func (e *engine) Settings() *Settings      { return e.settings }
func (e *engine) Document() codec.Document { return e.doc }

func (e *engine) Bind(t reflect.Type, f FieldFormat) (ValueCodec, error) {
	k := e.keyFor(t, f, false)
	if c, ok := e.bindings.Load(k); ok {
		return c.(ValueCodec), nil
	}
	b, err := e.binderFor(k.t, f)
	if err != nil {
		return nil, err
	}
	c, err := b.bind(e.settings, f, e.codecOptions())
	if err != nil {
		e.logRejected(k, f, err)
		return nil, err
	}
	actual, _ := e.bindings.LoadOrStore(k, c)
	e.logBound(k, f, b.kind())
	return actual.(ValueCodec), nil
}

func (e *engine) BindKey(t reflect.Type, f FieldFormat) (KeyValueCodec, error) {
	k := e.keyFor(t, f, true)
	if c, ok := e.bindings.Load(k); ok {
		return c.(KeyValueCodec), nil
	}
	b, err := e.binderFor(k.t, f)
	if err != nil {
		return nil, err
	}
	c, err := b.bindKey(e.settings, f, e.codecOptions())
	if err != nil {
		e.logRejected(k, f, err)
		return nil, err
	}
	actual, _ := e.bindings.LoadOrStore(k, c)
	e.logBound(k, f, b.kind())
	return actual.(KeyValueCodec), nil
}

func (e *engine) Marshal(v any, f FieldFormat) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("jsontime: cannot marshal untyped nil")
	}
	c, err := e.Bind(reflect.TypeOf(v), f)
	if err != nil {
		return nil, err
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return e.doc.Marshal(wire.Null())
	}
	w, err := c.EncodeAny(v)
	if err != nil {
		return nil, err
	}
	b, err := e.doc.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("jsontime: marshal %s: %w", c.Kind(), err)
	}
	return b, nil
}

func (e *engine) Unmarshal(b []byte, t reflect.Type, f FieldFormat) (any, error) {
	c, err := e.Bind(t, f)
	if err != nil {
		return nil, err
	}
	w, err := e.doc.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("jsontime: unmarshal %s: %w", c.Kind(), err)
	}
	if w.Kind() == wire.KindNull && t.Kind() == reflect.Pointer {
		return reflect.Zero(t).Interface(), nil
	}
	v, err := c.DecodeAny(w)
	if err != nil {
		e.log.Debug("decode failed", Fields{"kind": c.Kind().String(), "field": f.Name, "err": err})
		return nil, err
	}
	return asType(t, v), nil
}

func (e *engine) MarshalKey(v any, f FieldFormat) (string, error) {
	if v == nil {
		return "", fmt.Errorf("jsontime: cannot marshal untyped nil key")
	}
	c, err := e.BindKey(reflect.TypeOf(v), f)
	if err != nil {
		return "", err
	}
	return c.EncodeKeyAny(v)
}

func (e *engine) UnmarshalKey(key string, t reflect.Type, f FieldFormat) (any, error) {
	c, err := e.BindKey(t, f)
	if err != nil {
		return nil, err
	}
	v, err := c.DecodeKeyAny(key)
	if err != nil {
		return nil, err
	}
	return asType(t, v), nil
}

// asType wraps a decoded element value in as many pointers as t has.
func asType(t reflect.Type, v any) any {
	if t.Kind() != reflect.Pointer {
		return v
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(reflect.ValueOf(asType(t.Elem(), v)))
	return p.Interface()
}

func (e *engine) codecOptions() []CodecOption {
	return []CodecOption{WithDocument(e.doc), WithHooks(e.hooks)}
}

func (e *engine) keyFor(t reflect.Type, f FieldFormat, key bool) bindingKey {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return bindingKey{t: t, key: key, field: f.descriptor(), zone: f.Zone}
}

func (e *engine) binderFor(t reflect.Type, f FieldFormat) (binder, error) {
	b, ok := e.registry.binder(t)
	if !ok {
		err := &ConfigurationError{Field: f.Name, Reason: fmt.Sprintf("type %v is not a registered temporal type", t)}
		e.hooks.BindRejected(KindInvalid, f.Name, err)
		return nil, err
	}
	return b, nil
}

func (e *engine) logBound(k bindingKey, f FieldFormat, kind Kind) {
	e.log.Debug("codec bound", Fields{
		"binding": bindingID(k),
		"type":    k.t.String(),
		"kind":    kind.String(),
		"field":   f.Name,
		"is_key":  k.key,
	})
}

func (e *engine) logRejected(k bindingKey, f FieldFormat, err error) {
	e.log.Warn("codec rejected", Fields{
		"binding": bindingID(k),
		"type":    k.t.String(),
		"field":   f.Name,
		"is_key":  k.key,
		"err":     err,
	})
}

// bindingID is a short stable id for a binding, for correlating log lines.
func bindingID(k bindingKey) string {
	role := "value"
	if k.key {
		role = "key"
	}
	return util.BindingID(role, []string{k.t.PkgPath(), k.t.String(), k.field, fmt.Sprintf("%p", k.zone)})
}
