package jsontime

import (
	"fmt"
	"reflect"

	"github.com/unkn0wn-root/jsontime/codec"
)

// Engine is the entry point for the object-graph walker: it binds codecs for
// temporal field types against one Settings and one document model, caches
// the bindings and runs values through them.
type Engine interface {
	Settings() *Settings
	Document() codec.Document

	// Bind returns the codec for fields of type t formatted by f. Pointer
	// types bind their element type. Unsupported combinations are a
	// *ConfigurationError.
	Bind(t reflect.Type, f FieldFormat) (ValueCodec, error)
	// BindKey is Bind for map keys.
	BindKey(t reflect.Type, f FieldFormat) (KeyValueCodec, error)

	// Single value through the document model.
	Marshal(v any, f FieldFormat) ([]byte, error)
	Unmarshal(b []byte, t reflect.Type, f FieldFormat) (any, error)

	// Map keys, always text.
	MarshalKey(v any, f FieldFormat) (string, error)
	UnmarshalKey(key string, t reflect.Type, f FieldFormat) (any, error)
}

// Options configure an Engine. Every field is optional.
type Options struct {
	Settings  *Settings      // nil => DefaultSettings()
	Document  codec.Document // nil => codec.JSON{}
	Registry  *Registry      // nil => DefaultRegistry()
	Logger    Logger         // if nil, NopLogger is used
	Hooks     Hooks          // if nil, NopHooks is used
	MaxDecode int            // >0 wraps Document in codec.Limit
}

func New(opts Options) (Engine, error) {
	return newEngine(opts)
}

// Unmarshal decodes b into a T through e. For a pointer T, null yields
// nil.
func Unmarshal[T any](e Engine, b []byte, f FieldFormat) (T, error) {
	v, err := e.Unmarshal(b, reflect.TypeOf((*T)(nil)).Elem(), f)
	if err != nil {
		var zero T
		return zero, err
	}
	return typed[T](v)
}

// UnmarshalKey decodes a map key into a T through e.
func UnmarshalKey[T any](e Engine, key string, f FieldFormat) (T, error) {
	v, err := e.UnmarshalKey(key, reflect.TypeOf((*T)(nil)).Elem(), f)
	if err != nil {
		var zero T
		return zero, err
	}
	return typed[T](v)
}

func typed[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("jsontime: decoded %T, want %v", v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return t, nil
}
