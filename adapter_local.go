package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
	"github.com/unkn0wn-root/jsontime/wire"
)

// Local kinds carry no zone. Their epoch forms are read at UTC and the
// zone argument is ignored.

// ------------------------------
// LocalDate
// ------------------------------

type localDateAdapter struct{}

func (localDateAdapter) Kind() Kind                       { return KindLocalDate }
func (localDateAdapter) unit() epochUnit                  { return unitDays }
func (localDateAdapter) subSecond() bool                  { return false }
func (localDateAdapter) own(LocalDate) *time.Location     { return nil }
func (localDateAdapter) epoch(v LocalDate) (int64, int32) { return v.EpochDay() * secondsPerDay, 0 }

func (localDateAdapter) fromEpoch(sec int64, _ int32, _ *time.Location) LocalDate {
	return LocalDateOfEpochDay(floorDiv(sec, secondsPerDay))
}

func (localDateAdapter) components(v LocalDate, _ *time.Location) []wire.Value {
	return []wire.Value{wire.Int(int64(v.Year)), wire.Int(int64(v.Month)), wire.Int(int64(v.Day))}
}

func (localDateAdapter) fromComponents(c []wire.Value) (LocalDate, error) {
	r := newComponentReader(c, 3)
	d := r.date(0)
	return d, r.err
}

func (localDateAdapter) fields(v LocalDate, _ *time.Location) pattern.Fields {
	return pattern.FieldsOf(time.Date(v.Year, v.Month, v.Day, 0, 0, 0, 0, time.UTC))
}

func (localDateAdapter) fromParsed(p pattern.Parsed, _ *time.Location) (LocalDate, error) {
	return LocalDate{Year: p.Year, Month: p.Month, Day: p.Day}, nil
}

func (localDateAdapter) canonical(v LocalDate, _ *time.Location, _ bool) string {
	return v.String()
}

func (localDateAdapter) parseCanonical(s string, _ *time.Location) (LocalDate, error) {
	sc := &isoScanner{s: s}
	d, err := sc.date()
	if err != nil {
		return LocalDate{}, err
	}
	return d, sc.end()
}

func (localDateAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, false, false, true)
}

// ------------------------------
// LocalTime
// ------------------------------

type localTimeAdapter struct{}

func (localTimeAdapter) Kind() Kind                   { return KindLocalTime }
func (localTimeAdapter) unit() epochUnit              { return unitSeconds }
func (localTimeAdapter) subSecond() bool              { return true }
func (localTimeAdapter) own(LocalTime) *time.Location { return nil }

func (localTimeAdapter) epoch(v LocalTime) (int64, int32) {
	n := v.NanoOfDay()
	return n / int64(time.Second), int32(n % int64(time.Second))
}

func (localTimeAdapter) fromEpoch(sec int64, nano int32, _ *time.Location) LocalTime {
	return LocalTimeOfNanoOfDay(floorMod(sec, secondsPerDay)*int64(time.Second) + int64(nano))
}

func (localTimeAdapter) components(v LocalTime, _ *time.Location) []wire.Value {
	return clockComponents(v)
}

func (localTimeAdapter) fromComponents(c []wire.Value) (LocalTime, error) {
	r := newComponentReader(c, 4)
	lt := r.clock(0)
	return lt, r.err
}

func (localTimeAdapter) fields(v LocalTime, _ *time.Location) pattern.Fields {
	return clockFields(v)
}

func (localTimeAdapter) fromParsed(p pattern.Parsed, _ *time.Location) (LocalTime, error) {
	return LocalTime{Hour: p.Hour, Minute: p.Minute, Second: p.Second, Nanosecond: p.Nanosecond}, nil
}

func (localTimeAdapter) canonical(v LocalTime, _ *time.Location, _ bool) string {
	return v.String()
}

func (localTimeAdapter) parseCanonical(s string, _ *time.Location) (LocalTime, error) {
	sc := &isoScanner{s: s}
	lt, err := sc.clock()
	if err != nil {
		return LocalTime{}, err
	}
	return lt, sc.end()
}

func (localTimeAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, false, true, false, false)
}

// ------------------------------
// LocalDateTime
// ------------------------------

type localDateTimeAdapter struct{}

func (localDateTimeAdapter) Kind() Kind                       { return KindLocalDateTime }
func (localDateTimeAdapter) unit() epochUnit                  { return unitSeconds }
func (localDateTimeAdapter) subSecond() bool                  { return true }
func (localDateTimeAdapter) own(LocalDateTime) *time.Location { return nil }

func (localDateTimeAdapter) epoch(v LocalDateTime) (int64, int32) {
	return v.In(time.UTC).Unix(), int32(v.Time.Nanosecond)
}

func (localDateTimeAdapter) fromEpoch(sec int64, nano int32, _ *time.Location) LocalDateTime {
	return LocalDateTimeOf(time.Unix(sec, int64(nano)).UTC())
}

func (localDateTimeAdapter) components(v LocalDateTime, _ *time.Location) []wire.Value {
	return dateTimeComponents(v.In(time.UTC))
}

func (localDateTimeAdapter) fromComponents(c []wire.Value) (LocalDateTime, error) {
	r := newComponentReader(c, 7)
	d, lt := r.date(0), r.clock(3)
	return LocalDateTime{Date: d, Time: lt}, r.err
}

func (localDateTimeAdapter) fields(v LocalDateTime, _ *time.Location) pattern.Fields {
	f := pattern.FieldsOf(v.In(time.UTC))
	f.Offset = 0
	return f
}

func (localDateTimeAdapter) fromParsed(p pattern.Parsed, _ *time.Location) (LocalDateTime, error) {
	return LocalDateTime{
		Date: LocalDate{Year: p.Year, Month: p.Month, Day: p.Day},
		Time: LocalTime{Hour: p.Hour, Minute: p.Minute, Second: p.Second, Nanosecond: p.Nanosecond},
	}, nil
}

func (localDateTimeAdapter) canonical(v LocalDateTime, _ *time.Location, _ bool) string {
	return v.String()
}

func (localDateTimeAdapter) parseCanonical(s string, _ *time.Location) (LocalDateTime, error) {
	sc := &isoScanner{s: s}
	dt, err := sc.dateTime()
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt, sc.end()
}

func (localDateTimeAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, false, true)
}

// ------------------------------
// OffsetTime
// ------------------------------

// offsetTimeAdapter moves a value into a zone only when the zone has one
// offset all year; a time of day alone cannot pick between two offsets.
type offsetTimeAdapter struct{}

func (offsetTimeAdapter) Kind() Kind      { return KindOffsetTime }
func (offsetTimeAdapter) unit() epochUnit { return unitMillis }
func (offsetTimeAdapter) subSecond() bool { return true }

func (offsetTimeAdapter) own(v OffsetTime) *time.Location { return OffsetZone(v.Offset) }

// epoch is the UTC time of day.
func (offsetTimeAdapter) epoch(v OffsetTime) (int64, int32) {
	return localTimeAdapter{}.epoch(v.WithOffset(0).Time)
}

func (offsetTimeAdapter) fromEpoch(sec int64, nano int32, zone *time.Location) OffsetTime {
	utc := OffsetTime{Time: localTimeAdapter{}.fromEpoch(sec, nano, nil)}
	return inZone(utc, zone)
}

func (offsetTimeAdapter) components(v OffsetTime, zone *time.Location) []wire.Value {
	v = inZone(v, zone)
	return append(clockComponents(v.Time), wire.String(pattern.OffsetID(v.Offset)))
}

func (offsetTimeAdapter) fromComponents(c []wire.Value) (OffsetTime, error) {
	r := newComponentReader(c, 5)
	lt := r.clock(0)
	z := r.zone(4)
	if r.err != nil {
		return OffsetTime{}, r.err
	}
	off, _ := stableOffset(z)
	return OffsetTime{Time: lt, Offset: off}, nil
}

func (offsetTimeAdapter) fields(v OffsetTime, zone *time.Location) pattern.Fields {
	v = inZone(v, zone)
	f := clockFields(v.Time)
	f.Offset = v.Offset
	return f
}

func (offsetTimeAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (OffsetTime, error) {
	lt := LocalTime{Hour: p.Hour, Minute: p.Minute, Second: p.Second, Nanosecond: p.Nanosecond}
	switch {
	case p.HasOffset:
		return OffsetTime{Time: lt, Offset: p.Offset}, nil
	case p.Zone != nil:
		off, _ := stableOffset(p.Zone)
		return OffsetTime{Time: lt, Offset: off}, nil
	}
	var off int
	if zone != nil {
		off, _ = stableOffset(zone)
	}
	return OffsetTime{Time: lt, Offset: off}, nil
}

func (offsetTimeAdapter) canonical(v OffsetTime, zone *time.Location, _ bool) string {
	return inZone(v, zone).String()
}

func (offsetTimeAdapter) parseCanonical(s string, _ *time.Location) (OffsetTime, error) {
	sc := &isoScanner{s: s}
	lt, err := sc.clock()
	if err != nil {
		return OffsetTime{}, err
	}
	off, err := sc.offset()
	if err != nil {
		return OffsetTime{}, err
	}
	if err := sc.end(); err != nil {
		return OffsetTime{}, err
	}
	return OffsetTime{Time: lt, Offset: off}, nil
}

func (offsetTimeAdapter) checkPattern(p *Pattern) string {
	if p.layout.HasDate() {
		return "pattern has date fields the type does not carry"
	}
	return ""
}

func inZone(v OffsetTime, zone *time.Location) OffsetTime {
	if zone == nil {
		return v
	}
	if off, ok := stableOffset(zone); ok && off != v.Offset {
		return v.WithOffset(off)
	}
	return v
}
