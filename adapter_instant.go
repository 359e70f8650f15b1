package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
	"github.com/unkn0wn-root/jsontime/wire"
)

type instantAdapter struct{}

func (instantAdapter) Kind() Kind                     { return KindInstant }
func (instantAdapter) unit() epochUnit                { return unitMillis }
func (instantAdapter) subSecond() bool                { return true }
func (instantAdapter) own(Instant) *time.Location     { return time.UTC }
func (instantAdapter) epoch(v Instant) (int64, int32) { return v.Unix(), int32(v.Nanosecond()) }

func (instantAdapter) fromEpoch(sec int64, nano int32, _ *time.Location) Instant {
	return InstantOf(time.Unix(sec, int64(nano)))
}

// Components are always UTC; an instant has no zone of its own.
func (instantAdapter) components(v Instant, _ *time.Location) []wire.Value {
	return dateTimeComponents(v.UTC())
}

func (instantAdapter) fromComponents(c []wire.Value) (Instant, error) {
	r := newComponentReader(c, 7)
	d, lt := r.date(0), r.clock(3)
	if r.err != nil {
		return Instant{}, r.err
	}
	return InstantOf(LocalDateTime{Date: d, Time: lt}.In(time.UTC)), nil
}

func (instantAdapter) fields(v Instant, zone *time.Location) pattern.Fields {
	return fieldsIn(v.Time, zone)
}

func (instantAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (Instant, error) {
	return InstantOf(parsedTime(p, zone)), nil
}

// The canonical instant is always written in UTC.
func (instantAdapter) canonical(v Instant, _ *time.Location, _ bool) string {
	return formatInstant(v.Time)
}

func (instantAdapter) parseCanonical(s string, _ *time.Location) (Instant, error) {
	sc := &isoScanner{s: s}
	dt, err := sc.dateTime()
	if err != nil {
		return Instant{}, err
	}
	off, err := sc.offset()
	if err != nil {
		return Instant{}, err
	}
	if err := sc.end(); err != nil {
		return Instant{}, err
	}
	return InstantOf(dt.In(OffsetZone(off))), nil
}

func (instantAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, true, true)
}

// legacyAdapter handles Date. Decoding always goes through an Instant, then
// truncates to milliseconds.
type legacyAdapter struct{}

func (legacyAdapter) Kind() Kind                  { return KindDate }
func (legacyAdapter) unit() epochUnit             { return unitMillis }
func (legacyAdapter) subSecond() bool             { return false }
func (legacyAdapter) own(Date) *time.Location     { return time.UTC }
func (legacyAdapter) epoch(v Date) (int64, int32) { return v.Unix(), int32(v.Nanosecond()) }

func (legacyAdapter) fromEpoch(sec int64, nano int32, zone *time.Location) Date {
	return fromInstant(instantAdapter{}.fromEpoch(sec, nano, zone))
}

func (legacyAdapter) components(v Date, zone *time.Location) []wire.Value {
	return instantAdapter{}.components(Instant(v), zone)
}

func (legacyAdapter) fromComponents(c []wire.Value) (Date, error) {
	i, err := instantAdapter{}.fromComponents(c)
	return fromInstant(i), err
}

func (legacyAdapter) fields(v Date, zone *time.Location) pattern.Fields {
	return fieldsIn(v.Time, zone)
}

func (legacyAdapter) fromParsed(p pattern.Parsed, zone *time.Location) (Date, error) {
	i, err := instantAdapter{}.fromParsed(p, zone)
	return fromInstant(i), err
}

// The canonical legacy date is written in the resolved zone.
func (legacyAdapter) canonical(v Date, zone *time.Location, _ bool) string {
	return formatLegacy(v.In(zone))
}

// parseCanonical tries the ISO form first (offset optional, date-only
// accepted; zone-less text is read in zone), then RFC 1123. Whatever form
// matched, the instant it denotes is kept.
func (legacyAdapter) parseCanonical(s string, zone *time.Location) (Date, error) {
	i, err := parseLegacyISO(s, zone)
	if err == nil {
		return fromInstant(i), nil
	}
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, ferr := time.Parse(layout, s); ferr == nil {
			return fromInstant(InstantOf(t)), nil
		}
	}
	return Date{}, err
}

func parseLegacyISO(s string, zone *time.Location) (Instant, error) {
	sc := &isoScanner{s: s}
	d, err := sc.date()
	if err != nil {
		return Instant{}, err
	}
	dt := LocalDateTime{Date: d}
	if sc.peek('T') || sc.peek('t') {
		sc.s = sc.s[1:]
		if dt.Time, err = sc.clock(); err != nil {
			return Instant{}, err
		}
	}
	loc := zone
	if !sc.done() {
		off, err := sc.offset()
		if err != nil {
			return Instant{}, err
		}
		loc = OffsetZone(off)
	}
	if err := sc.end(); err != nil {
		return Instant{}, err
	}
	return InstantOf(dt.In(loc)), nil
}

func (legacyAdapter) checkPattern(p *Pattern) string {
	return patternNeeds(p, true, true, true, true)
}

func fromInstant(i Instant) Date { return DateOf(i.Time) }
