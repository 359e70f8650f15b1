package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
	"github.com/unkn0wn-root/jsontime/wire"
)

// ------------------------------
// ZonedDateTime
// ------------------------------

type zonedAdapter struct{}

func (zonedAdapter) Kind() Kind                           { return KindZonedDateTime }
func (zonedAdapter) unit() epochUnit                      { return unitMillis }
func (zonedAdapter) subSecond() bool                      { return true }
func (zonedAdapter) own(v ZonedDateTime) *time.Location   { return v.Location() }
func (zonedAdapter) epoch(v ZonedDateTime) (int64, int32) { return v.Unix(), int32(v.Nanosecond()) }

func (zonedAdapter) fromEpoch(sec int64, nano int32, zone *time.Location) ZonedDateTime {
	return ZonedDateTime{time.Unix(sec, int64(nano)).In(zone)}
}

// Components: date-time fields in zone, the offset id, then the zone id
// (the offset id again when zone is not a region).
func (zonedAdapter) components(v ZonedDateTime, zone *time.Location) []wire.Value {
	t := v.In(zone)
	_, off := t.Zone()
	id := pattern.OffsetID(off)
	region := id
	if name := zone.String(); pattern.IsRegionID(name) {
		region = name
	}
	return append(dateTimeComponents(t), wire.String(id), wire.String(region))
}

func (zonedAdapter) fromComponents(c []wire.Value) (ZonedDateTime, error) {
	r := newComponentReader(c, 9)
	d, lt := r.date(0), r.clock(3)
	offZone, region := r.zone(7), r.zone(8)
	if r.err != nil {
		return ZonedDateTime{}, r.err
	}
	return ZonedDateTime{LocalDateTime{Date: d, Time: lt}.In(offZone).In(region)}, nil
}

func (zonedAdapter) fields(v ZonedDateTime, zone *time.Location) pattern.Fields {
	return fieldsIn(v.Time, zone)
}

func (zonedAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (ZonedDateTime, error) {
	return ZonedDateTime{parsedTime(p, zone)}, nil
}

func (zonedAdapter) canonical(v ZonedDateTime, zone *time.Location, withZoneID bool) string {
	return formatZoned(v.In(zone), withZoneID)
}

// parseCanonical reads date-time, offset and an optional [region]. With a
// region the instant fixed by the offset is moved into the region.
func (zonedAdapter) parseCanonical(s string, _ *time.Location) (ZonedDateTime, error) {
	sc := &isoScanner{s: s}
	dt, err := sc.dateTime()
	if err != nil {
		return ZonedDateTime{}, err
	}
	off, err := sc.offset()
	if err != nil {
		return ZonedDateTime{}, err
	}
	region, err := sc.region()
	if err != nil {
		return ZonedDateTime{}, err
	}
	if err := sc.end(); err != nil {
		return ZonedDateTime{}, err
	}
	t := dt.In(OffsetZone(off))
	if region != nil {
		t = t.In(region)
	}
	return ZonedDateTime{t}, nil
}

func (zonedAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, true, true)
}

// ------------------------------
// OffsetDateTime
// ------------------------------

type offsetDateTimeAdapter struct{}

func (offsetDateTimeAdapter) Kind() Kind                          { return KindOffsetDateTime }
func (offsetDateTimeAdapter) unit() epochUnit                     { return unitMillis }
func (offsetDateTimeAdapter) subSecond() bool                     { return true }
func (offsetDateTimeAdapter) own(v OffsetDateTime) *time.Location { return v.Location() }
func (offsetDateTimeAdapter) epoch(v OffsetDateTime) (int64, int32) {
	return v.Unix(), int32(v.Nanosecond())
}

func (offsetDateTimeAdapter) fromEpoch(sec int64, nano int32, zone *time.Location) OffsetDateTime {
	return OffsetDateTimeOf(time.Unix(sec, int64(nano)).In(zone))
}

func (offsetDateTimeAdapter) components(v OffsetDateTime, zone *time.Location) []wire.Value {
	t := v.In(zone)
	_, off := t.Zone()
	return append(dateTimeComponents(t), wire.String(pattern.OffsetID(off)))
}

func (offsetDateTimeAdapter) fromComponents(c []wire.Value) (OffsetDateTime, error) {
	r := newComponentReader(c, 8)
	d, lt := r.date(0), r.clock(3)
	offZone := r.zone(7)
	if r.err != nil {
		return OffsetDateTime{}, r.err
	}
	return OffsetDateTimeOf(LocalDateTime{Date: d, Time: lt}.In(offZone)), nil
}

// An offset date-time never renders a region id, even in a region zone.
func (offsetDateTimeAdapter) fields(v OffsetDateTime, zone *time.Location) pattern.Fields {
	return fieldsIn(OffsetDateTimeOf(v.In(zone)).Time, nil)
}

func (offsetDateTimeAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (OffsetDateTime, error) {
	return OffsetDateTimeOf(parsedTime(p, zone)), nil
}

func (offsetDateTimeAdapter) canonical(v OffsetDateTime, zone *time.Location, _ bool) string {
	return formatOffsetDateTime(v.In(zone))
}

func (offsetDateTimeAdapter) parseCanonical(s string, _ *time.Location) (OffsetDateTime, error) {
	sc := &isoScanner{s: s}
	dt, err := sc.dateTime()
	if err != nil {
		return OffsetDateTime{}, err
	}
	off, err := sc.offset()
	if err != nil {
		return OffsetDateTime{}, err
	}
	if err := sc.end(); err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTimeOf(dt.In(OffsetZone(off))), nil
}

func (offsetDateTimeAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, true, true)
}

// ------------------------------
// time.Time (as ZonedDateTime)
// ------------------------------

type timeAdapter struct{}

func (timeAdapter) Kind() Kind                       { return KindZonedDateTime }
func (timeAdapter) unit() epochUnit                  { return unitMillis }
func (timeAdapter) subSecond() bool                  { return true }
func (timeAdapter) own(v time.Time) *time.Location   { return v.Location() }
func (timeAdapter) epoch(v time.Time) (int64, int32) { return v.Unix(), int32(v.Nanosecond()) }

func (timeAdapter) fromEpoch(sec int64, nano int32, zone *time.Location) time.Time {
	return zonedAdapter{}.fromEpoch(sec, nano, zone).Time
}

func (timeAdapter) components(v time.Time, zone *time.Location) []wire.Value {
	return zonedAdapter{}.components(ZonedDateTime{v}, zone)
}

func (timeAdapter) fromComponents(c []wire.Value) (time.Time, error) {
	z, err := zonedAdapter{}.fromComponents(c)
	return z.Time, err
}

func (timeAdapter) fields(v time.Time, zone *time.Location) pattern.Fields {
	return fieldsIn(v, zone)
}

func (timeAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (time.Time, error) {
	return parsedTime(p, zone), nil
}

func (timeAdapter) canonical(v time.Time, zone *time.Location, withZoneID bool) string {
	return formatZoned(v.In(zone), withZoneID)
}

func (timeAdapter) parseCanonical(s string, zone *time.Location) (time.Time, error) {
	z, err := zonedAdapter{}.parseCanonical(s, zone)
	return z.Time, err
}

func (timeAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, true, true)
}
