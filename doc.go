// Package jsontime decides, for every temporal value written to or read
// from a document, which wire shape, zone and pattern apply, and performs
// the conversion so that decode(encode(v)) == v at the shape's precision.
//
// Components:
//   - Settings: immutable global configuration (per-kind patterns and zone
//     modifiers, context zone, Features). Built in code or loaded from YAML/JSONC.
//   - FieldFormat: per-field override (pattern, zone, shape, feature toggles).
//   - Codec[T] / KeyCodec[T]: one bound codec per type and field. The format
//     is resolved and validated once at bind time; only the zone is resolved
//     per value.
//   - Engine: binds codecs for reflect.Types through a Registry and runs
//     values through a codec.Document (JSON, CBOR, Msgpack, Protobuf, Text).
//
// Precedence (strongest first):
//
//	pattern  field pattern > global per-kind pattern > canonical ISO-8601
//	shape    field shape > WRITE_DATES_AS_TIMESTAMPS > string
//	zone     zone embedded in pattern > context zone (if enabled) > modifier(own zone)
//
// Usage:
//
//	eng, _ := jsontime.New(jsontime.Options{Document: codec.JSON{}})
//	b, _ := eng.Marshal(jsontime.InstantOf(time.Now()), jsontime.FieldFormat{Name: "created_at"})
//	at, err := jsontime.Unmarshal[jsontime.Instant](eng, b, jsontime.FieldFormat{Name: "created_at"})
package jsontime
