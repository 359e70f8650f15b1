package jsontime

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; codecs call them on hot
// paths. Wrap a slow implementation with hooks/async.
type Hooks interface {
	// A codec could not be bound (unsupported shape, pattern, document model).
	BindRejected(kind Kind, field string, err error)

	// A value failed to decode. raw is the rendered wire value.
	ParseFailed(kind Kind, field string, raw string, err error)

	// The configured pattern did not match but the canonical form did.
	PatternFallback(kind Kind, field string, raw string)

	// A zone modifier returned nil; the value's own zone was kept.
	ZoneModifierIgnored(kind Kind)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) BindRejected(Kind, string, error)        {}
func (NopHooks) ParseFailed(Kind, string, string, error) {}
func (NopHooks) PatternFallback(Kind, string, string)    {}
func (NopHooks) ZoneModifierIgnored(Kind)                {}
