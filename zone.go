package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
)

// ZoneModifier maps a value's own zone to the zone used for rendering. It
// must be pure and total; a nil result keeps the original zone. It is not
// consulted when an embedded or context zone applies.
type ZoneModifier func(*time.Location) *time.Location

// IdentityZone keeps the original zone.
func IdentityZone(loc *time.Location) *time.Location { return loc }

// FixedZoneModifier maps every zone to loc.
func FixedZoneModifier(loc *time.Location) ZoneModifier {
	return func(*time.Location) *time.Location { return loc }
}

// ResolveZone picks the zone for one value: a zone embedded in p wins
// outright, then the context zone when enabled and configured, then the
// modifier applied to the value's own zone.
func ResolveZone(own *time.Location, p *Pattern, modifier ZoneModifier, context *time.Location, contextEnabled bool) *time.Location {
	var embedded *time.Location
	if p != nil {
		embedded = p.zone
	}
	z, _ := resolveZone(own, embedded, modifier, context, contextEnabled)
	return z
}

// resolveZone also reports whether the modifier returned nil. The modifier
// runs only when neither the embedded nor the context zone applies.
func resolveZone(own, embedded *time.Location, modifier ZoneModifier, context *time.Location, contextEnabled bool) (*time.Location, bool) {
	if embedded != nil {
		return embedded, false
	}
	if contextEnabled && context != nil {
		return context, false
	}
	if modifier == nil {
		modifier = IdentityZone
	}
	if z := modifier(own); z != nil {
		return z, false
	}
	return own, true
}

// LoadZone resolves "Z", an offset id ("+03:00") or a region id
// ("Europe/Moscow"). Offset ids map to shared zones named by the offset.
func LoadZone(id string) (*time.Location, error) {
	return pattern.LoadZone(id)
}

// OffsetZone returns the shared fixed zone named by its offset id.
func OffsetZone(offsetSeconds int) *time.Location {
	return pattern.OffsetZone(offsetSeconds)
}

// offsetOf returns the offset of loc at t.
func offsetOf(t time.Time, loc *time.Location) int {
	_, off := t.In(loc).Zone()
	return off
}

// stableOffset returns the offset of loc when it has a single offset
// across the year (fixed zones and regions without daylight saving).
func stableOffset(loc *time.Location) (int, bool) {
	jan := offsetOf(time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), loc)
	jul := offsetOf(time.Date(2001, time.July, 1, 0, 0, 0, 0, time.UTC), loc)
	return jan, jan == jul
}
