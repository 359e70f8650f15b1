package jsontime

import (
	"fmt"
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
	"github.com/unkn0wn-root/jsontime/wire"
)

type epochUnit uint8

const (
	unitMillis epochUnit = iota
	unitSeconds
	unitDays
)

// Adapter exposes one temporal type to the shared resolution and shape
// logic. The set of adapters is closed; use the package-level values
// (Instants, LocalDates, ...).
type Adapter[T any] interface {
	Kind() Kind

	unit() epochUnit
	subSecond() bool
	// own returns the value's own zone; nil for local kinds.
	own(v T) *time.Location

	epoch(v T) (sec int64, nano int32)
	fromEpoch(sec int64, nano int32, zone *time.Location) T

	components(v T, zone *time.Location) []wire.Value
	fromComponents(c []wire.Value) (T, error)

	fields(v T, zone *time.Location) pattern.Fields
	fromParsed(p pattern.Parsed, zone *time.Location) (T, error)

	canonical(v T, zone *time.Location, withZoneID bool) string
	parseCanonical(s string, zone *time.Location) (T, error)

	// checkPattern returns a reason when p cannot format or parse the kind.
	checkPattern(p *Pattern) string
}

// Package-level adapters, one per supported type.
var (
	Instants        Adapter[Instant]        = instantAdapter{}
	LocalDates      Adapter[LocalDate]      = localDateAdapter{}
	LocalTimes      Adapter[LocalTime]      = localTimeAdapter{}
	LocalDateTimes  Adapter[LocalDateTime]  = localDateTimeAdapter{}
	OffsetTimes     Adapter[OffsetTime]     = offsetTimeAdapter{}
	OffsetDateTimes Adapter[OffsetDateTime] = offsetDateTimeAdapter{}
	ZonedDateTimes  Adapter[ZonedDateTime]  = zonedAdapter{}
	Dates           Adapter[Date]           = legacyAdapter{}
	// Times treats a plain time.Time as a ZonedDateTime.
	Times Adapter[time.Time] = timeAdapter{}
)

// patternNeeds checks the layout against what a kind can supply.
func patternNeeds(p *Pattern, date, clock, zone bool, needDate bool) string {
	l := p.layout
	switch {
	case l.HasDate() && !date:
		return "pattern has date fields the type does not carry"
	case l.HasTime() && !clock:
		return "pattern has time fields the type does not carry"
	case (l.HasOffset() || l.HasZoneID()) && !zone:
		return "pattern has zone fields the type does not carry"
	case needDate && !l.HasDate():
		return "pattern lacks the date fields needed to parse the type"
	}
	return ""
}

// parsedTime builds an absolute time from parsed fields. An offset in the
// text fixes the instant; a zone id in the text then sets the location.
// Without either, zone is used.
func parsedTime(p pattern.Parsed, zone *time.Location) time.Time {
	base := zone
	switch {
	case p.HasOffset:
		base = OffsetZone(p.Offset)
	case p.Zone != nil:
		base = p.Zone
	}
	t := time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, p.Nanosecond, base)
	if p.HasZoneID {
		t = t.In(p.Zone)
	}
	return t
}

// fieldsIn breaks t down in zone (when non-nil).
func fieldsIn(t time.Time, zone *time.Location) pattern.Fields {
	if zone != nil {
		t = t.In(zone)
	}
	return pattern.FieldsOf(t)
}

func clockFields(lt LocalTime) pattern.Fields {
	return pattern.Fields{
		Year: 1970, Month: time.January, Day: 1,
		Hour: lt.Hour, Minute: lt.Minute, Second: lt.Second, Nanosecond: lt.Nanosecond,
	}
}

// ------------------------------
// component arrays
// ------------------------------

func dateTimeComponents(t time.Time) []wire.Value {
	y, mo, d := t.Date()
	return []wire.Value{
		wire.Int(int64(y)), wire.Int(int64(mo)), wire.Int(int64(d)),
		wire.Int(int64(t.Hour())), wire.Int(int64(t.Minute())), wire.Int(int64(t.Second())),
		wire.Int(int64(t.Nanosecond())),
	}
}

func clockComponents(lt LocalTime) []wire.Value {
	return []wire.Value{
		wire.Int(int64(lt.Hour)), wire.Int(int64(lt.Minute)), wire.Int(int64(lt.Second)),
		wire.Int(int64(lt.Nanosecond)),
	}
}

// componentReader validates and reads an array of fixed cardinality.
type componentReader struct {
	c   []wire.Value
	err error
}

func newComponentReader(c []wire.Value, n int) *componentReader {
	r := &componentReader{c: c}
	if len(c) != n {
		r.err = fmt.Errorf("expected %d components, got %d", n, len(c))
	}
	return r
}

func (r *componentReader) int(i int) int {
	if r.err != nil {
		return 0
	}
	n, ok := r.c[i].Int64()
	if !ok {
		r.err = fmt.Errorf("component %d: expected int, got %s", i, r.c[i].Kind())
		return 0
	}
	return int(n)
}

func (r *componentReader) zone(i int) *time.Location {
	if r.err != nil {
		return nil
	}
	s, ok := r.c[i].Str()
	if !ok {
		r.err = fmt.Errorf("component %d: expected zone id string, got %s", i, r.c[i].Kind())
		return nil
	}
	loc, err := LoadZone(s)
	if err != nil {
		r.err = fmt.Errorf("component %d: %w", i, err)
	}
	return loc
}

func (r *componentReader) date(from int) LocalDate {
	d := LocalDate{Year: r.int(from), Month: time.Month(r.int(from + 1)), Day: r.int(from + 2)}
	if r.err == nil && (d.Month < 1 || d.Month > 12 || !d.Valid()) {
		r.err = fmt.Errorf("invalid date %s", d)
	}
	return d
}

func (r *componentReader) clock(from int) LocalTime {
	lt := LocalTime{Hour: r.int(from), Minute: r.int(from + 1), Second: r.int(from + 2), Nanosecond: r.int(from + 3)}
	if r.err == nil && !lt.Valid() {
		r.err = fmt.Errorf("invalid time %02d:%02d:%02d.%d", lt.Hour, lt.Minute, lt.Second, lt.Nanosecond)
	}
	return lt
}
