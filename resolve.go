package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/wire"
)

// EffectiveFormat is the decision for one value: pattern (nil for the
// canonical form), zone (nil for kinds without zone), effective shape and
// precision.
type EffectiveFormat struct {
	Pattern        *Pattern
	Zone           *time.Location
	Shape          Shape
	UseNanoseconds bool
	WithZoneID     bool
}

// source is one precedence level. ok is false when the level is unset.
type source[T any] func() (v T, ok bool)

// firstOf walks sources strongest first and returns the first set value,
// or def.
func firstOf[T any](def T, sources ...source[T]) T {
	for _, s := range sources {
		if v, ok := s(); ok {
			return v
		}
	}
	return def
}

func set[T any](v T, ok bool) source[T] {
	return func() (T, bool) { return v, ok }
}

// resolved is the static part of an EffectiveFormat, fixed at bind time.
// Only the zone is computed per value.
type resolved struct {
	kind  Kind
	field string
	key   bool

	pattern  *Pattern       // nil: canonical
	embedded *time.Location // zone embedded in the winning pattern (or canonical)
	shape    Shape          // effective: String, NumberInt, NumberFloat, Array
	nanos    bool
	zoneID   bool

	contextZone *time.Location // nil when unset or disabled
	modifier    ZoneModifier
}

// resolveFormat merges the field override, the global settings and the
// features into the static format for kind. Unset sources fall through;
// only a field pattern that does not compile is an error.
func resolveFormat(kind Kind, subSecond bool, s *Settings, f FieldFormat, key bool) (*resolved, error) {
	fs := valueFeatures
	if key {
		fs = keyFeatures
	}
	feats := f.apply(s.Features())

	var fieldPattern *Pattern
	if f.Pattern != "" {
		p, err := NewPattern(f.Pattern, nil)
		if err != nil {
			return nil, &ConfigurationError{Kind: kind, Field: f.Name, Reason: "invalid field pattern", Err: err}
		}
		fieldPattern = p
	}
	global := s.Pattern(kind)

	p := firstOf[*Pattern](nil,
		set(fieldPattern, fieldPattern != nil),
		set(global, global != nil),
	)
	var patternZone *time.Location
	if p != nil {
		patternZone = p.zone
		if p == fieldPattern && global != nil {
			patternZone = global.zone
		}
	}
	embedded := firstOf[*time.Location](nil,
		set(f.Zone, f.Zone != nil),
		set(patternZone, patternZone != nil),
	)
	if p != nil && p.zone != embedded {
		p = p.WithZone(embedded)
	}

	shape := firstOf(ShapeString,
		set(f.Shape, f.Shape != ShapeDefault),
		set(ShapeNumber, feats.Enabled(fs.timestamps)),
	)
	nanos := feats.Enabled(fs.nanos)
	if shape == ShapeNumber {
		shape = ShapeNumberInt
		if nanos && subSecond {
			shape = ShapeNumberFloat
		}
	}

	r := &resolved{
		kind:     kind,
		field:    f.Name,
		key:      key,
		pattern:  p,
		embedded: embedded,
		shape:    shape,
		nanos:    nanos,
		zoneID:   feats.Enabled(fs.zoneID),
		modifier: s.ZoneModifier(kind),
	}
	if feats.Enabled(fs.contextZone) {
		r.contextZone = s.ContextZone()
	}
	if !kind.zoned() {
		r.embedded, r.contextZone = nil, nil
		if r.pattern != nil {
			r.pattern = r.pattern.WithZone(nil)
		}
	}
	return r, nil
}

// shapeSupport is satisfied by document models; see codec.Document.
type shapeSupport interface {
	Name() string
	Supports(wire.Kind) bool
}

// validate rejects combinations that cannot round-trip. checkPattern is the
// adapter's pattern check.
func (r *resolved) validate(checkPattern func(*Pattern) string, doc shapeSupport) error {
	cfg := func(reason string) error {
		e := &ConfigurationError{Kind: r.kind, Field: r.field, Shape: r.shape, Reason: reason}
		if doc != nil {
			e.Document = doc.Name()
		}
		return e
	}
	if r.shape == ShapeNumberFloat && r.kind == KindLocalDate {
		return cfg("type has no sub-day precision for a decimal timestamp")
	}
	if r.key && r.shape == ShapeArray {
		return cfg("map keys cannot be arrays")
	}
	if !r.key && doc != nil && !doc.Supports(r.shape.wireKind()) {
		return cfg("document model cannot carry the shape")
	}
	if r.pattern != nil {
		if reason := checkPattern(r.pattern); reason != "" {
			return cfg(reason + ": " + r.pattern.String())
		}
		if reason := r.pinnedZone(); reason != "" {
			return cfg(reason + ": " + r.pattern.String())
		}
	}
	return nil
}

// pinnedZone checks that text from a pattern without offset or zone id
// is read back in the zone it was written in. Values carrying their own
// zone need an embedded or context zone for that.
func (r *resolved) pinnedZone() string {
	l := r.pattern.layout
	if !r.kind.ownZoneVaries() || l.HasOffset() || l.HasZoneID() {
		return ""
	}
	pin := r.embedded
	if pin == nil {
		pin = r.contextZone
	}
	if pin == nil {
		return "pattern has no offset or zone id and no zone is pinned"
	}
	if r.kind == KindOffsetTime {
		if _, ok := stableOffset(pin); !ok {
			return "pattern has no offset and the pinned zone has no fixed offset"
		}
	}
	return ""
}

// zone resolves the zone for a value whose own zone is own. Local kinds get
// nil without consulting any source.
func (r *resolved) zone(own *time.Location) (*time.Location, bool) {
	if !r.kind.zoned() {
		return nil, false
	}
	return resolveZone(own, r.embedded, r.modifier, r.contextZone, r.contextZone != nil)
}

func (r *resolved) effective(zone *time.Location) EffectiveFormat {
	return EffectiveFormat{
		Pattern:        r.pattern,
		Zone:           zone,
		Shape:          r.shape,
		UseNanoseconds: r.nanos,
		WithZoneID:     r.zoneID,
	}
}
