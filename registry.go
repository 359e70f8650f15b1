package jsontime

import (
	"reflect"
	"sync"
)

// binder binds codecs for one Go type without exposing its type parameter.
type binder interface {
	kind() Kind
	bind(s *Settings, f FieldFormat, opts []CodecOption) (ValueCodec, error)
	bindKey(s *Settings, f FieldFormat, opts []CodecOption) (KeyValueCodec, error)
}

type adapterBinder[T any] struct{ a Adapter[T] }

func (b adapterBinder[T]) kind() Kind { return b.a.Kind() }

func (b adapterBinder[T]) bind(s *Settings, f FieldFormat, opts []CodecOption) (ValueCodec, error) {
	c, err := NewCodec(s, b.a, f, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (b adapterBinder[T]) bindKey(s *Settings, f FieldFormat, opts []CodecOption) (KeyValueCodec, error) {
	c, err := NewKeyCodec(s, b.a, f, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Registry maps Go types to adapters. The object-graph walker asks it which
// field types are temporal. Safe for concurrent use.
type Registry struct {
	mu sync.RWMutex
	m  map[reflect.Type]binder
}

// NewRegistry returns a registry holding the built-in types.
func NewRegistry() *Registry {
	r := &Registry{m: make(map[reflect.Type]binder, 9)}
	Register(r, Instants)
	Register(r, LocalDates)
	Register(r, LocalTimes)
	Register(r, LocalDateTimes)
	Register(r, OffsetTimes)
	Register(r, OffsetDateTimes)
	Register(r, ZonedDateTimes)
	Register(r, Dates)
	Register(r, Times)
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry is built once, on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register binds T to a. A later call for the same T replaces the earlier
// binding; engines that already cached a codec keep it.
func Register[T any](r *Registry, a Adapter[T]) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	r.m[t] = adapterBinder[T]{a: a}
	r.mu.Unlock()
}

// Lookup reports the kind bound to t. Pointer types resolve to their
// element type.
func (r *Registry) Lookup(t reflect.Type) (Kind, bool) {
	b, ok := r.binder(t)
	if !ok {
		return KindInvalid, false
	}
	return b.kind(), true
}

// Types lists the registered types.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reflect.Type, 0, len(r.m))
	for t := range r.m {
		out = append(out, t)
	}
	return out
}

func (r *Registry) binder(t reflect.Type) (binder, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, false
	}
	r.mu.RLock()
	b, ok := r.m[t]
	r.mu.RUnlock()
	return b, ok
}
