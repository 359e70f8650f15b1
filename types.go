package jsontime

import (
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
)

const (
	secondsPerDay = 86400
	nanosPerDay   = int64(secondsPerDay) * int64(time.Second)
)

// Instant is a point on the time line. Its location is always UTC.
type Instant struct{ time.Time }

func InstantOf(t time.Time) Instant { return Instant{t.UTC()} }

func (i Instant) String() string { return formatInstant(i.Time) }

// LocalDate is a calendar date without time-of-day or zone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

func LocalDateOf(t time.Time) LocalDate {
	y, m, d := t.Date()
	return LocalDate{Year: y, Month: m, Day: d}
}

// EpochDay counts days since 1970-01-01.
func (d LocalDate) EpochDay() int64 {
	u := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix()
	return floorDiv(u, secondsPerDay)
}

func LocalDateOfEpochDay(n int64) LocalDate {
	return LocalDateOf(time.Unix(n*secondsPerDay, 0).UTC())
}

// Valid reports whether d names an existing calendar day.
func (d LocalDate) Valid() bool {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

func (d LocalDate) String() string { return formatDate(d.Year, d.Month, d.Day) }

// LocalTime is a time of day without date or zone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

func (t LocalTime) NanoOfDay() int64 {
	return int64(t.Hour*3600+t.Minute*60+t.Second)*int64(time.Second) + int64(t.Nanosecond)
}

func LocalTimeOfNanoOfDay(n int64) LocalTime {
	n = floorMod(n, nanosPerDay)
	sec := int(n / int64(time.Second))
	return LocalTime{Hour: sec / 3600, Minute: (sec / 60) % 60, Second: sec % 60, Nanosecond: int(n % int64(time.Second))}
}

func (t LocalTime) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 && t.Nanosecond >= 0 && t.Nanosecond < int(time.Second)
}

func (t LocalTime) String() string { return formatClock(t.Hour, t.Minute, t.Second, t.Nanosecond) }

// LocalDateTime is a date and time of day without zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{Date: LocalDateOf(t), Time: LocalTimeOf(t)}
}

// In places dt in loc.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanosecond, loc)
}

func (dt LocalDateTime) String() string { return dt.Date.String() + "T" + dt.Time.String() }

// OffsetTime is a time of day with a fixed offset from UTC.
type OffsetTime struct {
	Time   LocalTime
	Offset int // seconds east of UTC
}

func OffsetTimeOf(t time.Time) OffsetTime {
	_, off := t.Zone()
	return OffsetTime{Time: LocalTimeOf(t), Offset: off}
}

// WithOffset keeps the instant and moves the value to another offset.
func (t OffsetTime) WithOffset(off int) OffsetTime {
	n := t.Time.NanoOfDay() + int64(off-t.Offset)*int64(time.Second)
	return OffsetTime{Time: LocalTimeOfNanoOfDay(n), Offset: off}
}

func (t OffsetTime) String() string { return t.Time.String() + pattern.OffsetID(t.Offset) }

// OffsetDateTime is an instant with a fixed offset. Its location is always
// an offset zone.
type OffsetDateTime struct{ time.Time }

func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	_, off := t.Zone()
	return OffsetDateTime{t.In(OffsetZone(off))}
}

func (o OffsetDateTime) String() string { return formatOffsetDateTime(o.Time) }

// ZonedDateTime is an instant in a region or offset zone.
type ZonedDateTime struct{ time.Time }

func ZonedDateTimeOf(t time.Time) ZonedDateTime { return ZonedDateTime{t} }

// Same reports whether z and o denote the same instant in the same zone.
func (z ZonedDateTime) Same(o ZonedDateTime) bool {
	return z.Equal(o.Time) && z.Location().String() == o.Location().String()
}

func (z ZonedDateTime) String() string { return formatZoned(z.Time, true) }

// Date is the legacy date type: an instant with millisecond precision.
type Date struct{ time.Time }

func DateOf(t time.Time) Date { return Date{t.UTC().Truncate(time.Millisecond)} }

func (d Date) String() string { return formatLegacy(d.Time) }

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 { return a - floorDiv(a, b)*b }
