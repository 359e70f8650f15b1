package jsontime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/unkn0wn-root/jsontime/internal/pattern"
)

// Canonical text forms. Fractions are written in groups of three digits
// (".758", ".758927", ".758927001") and omitted when zero; seconds are
// always written.

func fraction(nano int) string {
	switch {
	case nano == 0:
		return ""
	case nano%1_000_000 == 0:
		return fmt.Sprintf(".%03d", nano/1_000_000)
	case nano%1_000 == 0:
		return fmt.Sprintf(".%06d", nano/1_000)
	default:
		return fmt.Sprintf(".%09d", nano)
	}
}

func formatYear(y int) string {
	switch {
	case y > 9999:
		return "+" + strconv.Itoa(y)
	case y < 0:
		return fmt.Sprintf("-%04d", -y)
	default:
		return fmt.Sprintf("%04d", y)
	}
}

func formatDate(y int, m time.Month, d int) string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(y), int(m), d)
}

func formatClock(h, m, s, nano int) string {
	return fmt.Sprintf("%02d:%02d:%02d%s", h, m, s, fraction(nano))
}

func formatLocal(t time.Time) string {
	y, mo, d := t.Date()
	return formatDate(y, mo, d) + "T" + formatClock(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func formatInstant(t time.Time) string {
	return formatLocal(t.UTC()) + "Z"
}

func formatOffsetDateTime(t time.Time) string {
	_, off := t.Zone()
	return formatLocal(t) + pattern.OffsetID(off)
}

// formatZoned appends the region id in brackets when withID is set and the
// location is a region.
func formatZoned(t time.Time, withID bool) string {
	s := formatOffsetDateTime(t)
	if name := t.Location().String(); withID && pattern.IsRegionID(name) {
		s += "[" + name + "]"
	}
	return s
}

// formatLegacy always writes milliseconds.
func formatLegacy(t time.Time) string {
	_, off := t.Zone()
	y, mo, d := t.Date()
	return fmt.Sprintf("%sT%02d:%02d:%02d.%03d%s", formatDate(y, mo, d),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1_000_000, pattern.OffsetID(off))
}

// isoScanner reads ISO-8601 extended fragments. Each method consumes from the
// front of s.
type isoScanner struct {
	s string
}

var errISO = errors.New("not an ISO-8601 value")

func (sc *isoScanner) done() bool { return sc.s == "" }

func (sc *isoScanner) expect(c byte) error {
	if sc.s == "" || sc.s[0] != c {
		return fmt.Errorf("%w: expected %q", errISO, c)
	}
	sc.s = sc.s[1:]
	return nil
}

func (sc *isoScanner) peek(c byte) bool { return sc.s != "" && sc.s[0] == c }

func (sc *isoScanner) num(minDigits, maxDigits int) (int, error) {
	n := 0
	for n < maxDigits && n < len(sc.s) && sc.s[n] >= '0' && sc.s[n] <= '9' {
		n++
	}
	if n < minDigits {
		return 0, fmt.Errorf("%w: expected %d digit(s)", errISO, minDigits)
	}
	v, _ := strconv.Atoi(sc.s[:n])
	sc.s = sc.s[n:]
	return v, nil
}

func (sc *isoScanner) date() (LocalDate, error) {
	sign := 1
	switch {
	case sc.peek('-'):
		sign = -1
		sc.s = sc.s[1:]
	case sc.peek('+'):
		sc.s = sc.s[1:]
	}
	y, err := sc.num(4, 9)
	if err != nil {
		return LocalDate{}, err
	}
	if err := sc.expect('-'); err != nil {
		return LocalDate{}, err
	}
	m, err := sc.num(2, 2)
	if err != nil {
		return LocalDate{}, err
	}
	if err := sc.expect('-'); err != nil {
		return LocalDate{}, err
	}
	d, err := sc.num(2, 2)
	if err != nil {
		return LocalDate{}, err
	}
	ld := LocalDate{Year: sign * y, Month: time.Month(m), Day: d}
	if m < 1 || m > 12 || !ld.Valid() {
		return LocalDate{}, fmt.Errorf("%w: invalid date %s", errISO, ld)
	}
	return ld, nil
}

// clock reads HH:mm[:ss[.fffffffff]].
func (sc *isoScanner) clock() (LocalTime, error) {
	var lt LocalTime
	var err error
	if lt.Hour, err = sc.num(2, 2); err != nil {
		return LocalTime{}, err
	}
	if err = sc.expect(':'); err != nil {
		return LocalTime{}, err
	}
	if lt.Minute, err = sc.num(2, 2); err != nil {
		return LocalTime{}, err
	}
	if sc.peek(':') {
		sc.s = sc.s[1:]
		if lt.Second, err = sc.num(2, 2); err != nil {
			return LocalTime{}, err
		}
		if sc.peek('.') || sc.peek(',') {
			sc.s = sc.s[1:]
			n := 0
			for n < len(sc.s) && sc.s[n] >= '0' && sc.s[n] <= '9' {
				n++
			}
			if n == 0 || n > 9 {
				return LocalTime{}, fmt.Errorf("%w: fraction must have 1 to 9 digits", errISO)
			}
			frac, _ := strconv.Atoi(sc.s[:n] + strings.Repeat("0", 9-n))
			lt.Nanosecond = frac
			sc.s = sc.s[n:]
		}
	}
	if !lt.Valid() {
		return LocalTime{}, fmt.Errorf("%w: invalid time %s", errISO, lt)
	}
	return lt, nil
}

// offset reads Z or an offset id, leaving a trailing "[zone]" in place.
func (sc *isoScanner) offset() (int, error) {
	if sc.peek('Z') || sc.peek('z') {
		sc.s = sc.s[1:]
		return 0, nil
	}
	end := strings.IndexByte(sc.s, '[')
	if end < 0 {
		end = len(sc.s)
	}
	id := sc.s[:end]
	if id == "" || (id[0] != '+' && id[0] != '-') {
		return 0, fmt.Errorf("%w: expected zone offset", errISO)
	}
	loc, err := pattern.LoadZone(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errISO, err)
	}
	sc.s = sc.s[end:]
	_, off := time.Time{}.In(loc).Zone()
	return off, nil
}

// region reads an optional "[zone]" suffix.
func (sc *isoScanner) region() (*time.Location, error) {
	if !sc.peek('[') {
		return nil, nil
	}
	end := strings.IndexByte(sc.s, ']')
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated zone id", errISO)
	}
	loc, err := pattern.LoadZone(sc.s[1:end])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errISO, err)
	}
	sc.s = sc.s[end+1:]
	return loc, nil
}

func (sc *isoScanner) end() error {
	if !sc.done() {
		return fmt.Errorf("%w: unexpected trailing text %q", errISO, sc.s)
	}
	return nil
}

// dateTime reads date 'T' clock.
func (sc *isoScanner) dateTime() (LocalDateTime, error) {
	d, err := sc.date()
	if err != nil {
		return LocalDateTime{}, err
	}
	if !sc.peek('T') && !sc.peek('t') {
		return LocalDateTime{}, fmt.Errorf("%w: expected 'T'", errISO)
	}
	sc.s = sc.s[1:]
	c, err := sc.clock()
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{Date: d, Time: c}, nil
}
