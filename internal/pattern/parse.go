package pattern

import (
	"fmt"
	"strings"
	"time"
)

// Parsed is the result of Layout.Parse. Absent calendar fields default to
// 1970-01-01, absent time fields to zero.
type Parsed struct {
	Fields
	// Zone is the zone named by a VV token, or an offset zone built from an
	// offset token. Nil when the text carried neither.
	Zone      *time.Location
	HasOffset bool
	HasZoneID bool
}

// ParseError describes text that does not match a layout.
type ParseError struct {
	Text    string
	Pattern string
	Pos     int
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text %q does not match pattern %q at position %d: %s", e.Text, e.Pattern, e.Pos, e.Msg)
}

type parser struct {
	l    *Layout
	text string
	pos  int
}

func (p *parser) fail(msg string, args ...any) error {
	return &ParseError{Text: p.text, Pattern: p.l.src, Pos: p.pos, Msg: fmt.Sprintf(msg, args...)}
}

// Parse reads text according to the layout. The whole text must be consumed.
func (l *Layout) Parse(text string) (Parsed, error) {
	p := &parser{l: l, text: text}
	out := Parsed{Fields: Fields{Year: 1970, Month: time.January, Day: 1}}
	hour12, hasHour12 := 0, false
	pm, hasAMPM := false, false

	for i, tok := range l.tokens {
		adjacent := i+1 < len(l.tokens) && isNumeric(l.tokens[i+1].f)
		switch tok.f {
		case fLiteral:
			if !strings.HasPrefix(text[p.pos:], tok.lit) {
				return Parsed{}, p.fail("expected %q", tok.lit)
			}
			p.pos += len(tok.lit)
		case fYear:
			switch {
			case tok.width == 2:
				v, err := p.digits(2, 2)
				if err != nil {
					return Parsed{}, err
				}
				out.Year = 2000 + v
			case adjacent:
				v, err := p.digits(tok.width, tok.width)
				if err != nil {
					return Parsed{}, err
				}
				out.Year = v
			default:
				neg := p.pos < len(text) && text[p.pos] == '-'
				if neg {
					p.pos++
				}
				v, err := p.digits(tok.width, 10)
				if err != nil {
					return Parsed{}, err
				}
				if neg {
					v = -v
				}
				out.Year = v
			}
		case fMonth:
			v, err := p.number(tok.width, adjacent, 1, 12)
			if err != nil {
				return Parsed{}, err
			}
			out.Month = time.Month(v)
		case fMonthText:
			m, err := p.name(tok.width, monthNames[:])
			if err != nil {
				return Parsed{}, err
			}
			out.Month = time.Month(m + 1)
		case fDay:
			v, err := p.number(tok.width, adjacent, 1, 31)
			if err != nil {
				return Parsed{}, err
			}
			out.Day = v
		case fWeekday:
			w, err := p.name(tok.width, weekdayNames[:])
			if err != nil {
				return Parsed{}, err
			}
			out.Weekday = time.Weekday(w)
		case fAMPM:
			rest := text[p.pos:]
			switch {
			case len(rest) >= 2 && strings.EqualFold(rest[:2], "AM"):
				pm = false
			case len(rest) >= 2 && strings.EqualFold(rest[:2], "PM"):
				pm = true
			default:
				return Parsed{}, p.fail("expected AM or PM")
			}
			hasAMPM = true
			p.pos += 2
		case fHour:
			v, err := p.number(tok.width, adjacent, 0, 23)
			if err != nil {
				return Parsed{}, err
			}
			out.Hour = v
		case fHour12:
			v, err := p.number(tok.width, adjacent, 1, 12)
			if err != nil {
				return Parsed{}, err
			}
			hour12, hasHour12 = v, true
		case fMinute:
			v, err := p.number(tok.width, adjacent, 0, 59)
			if err != nil {
				return Parsed{}, err
			}
			out.Minute = v
		case fSecond:
			v, err := p.number(tok.width, adjacent, 0, 59)
			if err != nil {
				return Parsed{}, err
			}
			out.Second = v
		case fFraction:
			v, err := p.digits(tok.width, tok.width)
			if err != nil {
				return Parsed{}, err
			}
			for n := tok.width; n < 9; n++ {
				v *= 10
			}
			out.Nanosecond = v
		case fOffset:
			off, err := p.offset(tok.style, tok.zulu)
			if err != nil {
				return Parsed{}, err
			}
			out.Offset = off
			out.HasOffset = true
			if !out.HasZoneID {
				out.Zone = OffsetZone(off)
			}
		case fZoneID:
			loc, err := p.zoneID()
			if err != nil {
				return Parsed{}, err
			}
			out.Zone = loc
			out.HasZoneID = true
		}
	}
	if p.pos != len(text) {
		return Parsed{}, p.fail("unparsed trailing text %q", text[p.pos:])
	}
	if hasHour12 {
		out.Hour = hour12 % 12
		if hasAMPM && pm {
			out.Hour += 12
		}
	}
	if l.HasDate() {
		d := time.Date(out.Year, out.Month, out.Day, 0, 0, 0, 0, time.UTC)
		if d.Month() != out.Month || d.Day() != out.Day {
			p.pos = 0
			return Parsed{}, p.fail("invalid date %04d-%02d-%02d", out.Year, int(out.Month), out.Day)
		}
		if l.uses(fWeekday) && d.Weekday() != out.Weekday {
			p.pos = 0
			return Parsed{}, p.fail("day of week %s does not match date", out.Weekday)
		}
		out.Weekday = d.Weekday()
	}
	return out, nil
}

func isNumeric(f field) bool {
	switch f {
	case fYear, fMonth, fDay, fHour, fHour12, fMinute, fSecond, fFraction:
		return true
	}
	return false
}

// number reads a 1-2 digit field. Two-letter fields and fields directly
// followed by another numeric field require exactly width digits.
func (p *parser) number(width int, adjacent bool, lo, hi int) (int, error) {
	maxDigits := 2
	if adjacent {
		maxDigits = width
	}
	start := p.pos
	v, err := p.digits(width, maxDigits)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		p.pos = start
		return 0, p.fail("value %d out of range [%d,%d]", v, lo, hi)
	}
	return v, nil
}

func (p *parser) digits(minDigits, maxDigits int) (int, error) {
	v, n := 0, 0
	for n < maxDigits && p.pos+n < len(p.text) {
		c := p.text[p.pos+n]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		n++
	}
	if n < minDigits {
		return 0, p.fail("expected %d digit(s)", minDigits)
	}
	p.pos += n
	return v, nil
}

func (p *parser) name(width int, names []string) (int, error) {
	rest := p.text[p.pos:]
	for i, full := range names {
		cand := full
		if width < 4 {
			cand = full[:3]
		}
		if len(rest) >= len(cand) && strings.EqualFold(rest[:len(cand)], cand) {
			p.pos += len(cand)
			return i, nil
		}
	}
	return 0, p.fail("unknown name")
}

func (p *parser) offset(style int, zulu bool) (int, error) {
	rest := p.text[p.pos:]
	if zulu && strings.HasPrefix(rest, "Z") {
		p.pos++
		return 0, nil
	}
	if rest == "" || (rest[0] != '+' && rest[0] != '-') {
		return 0, p.fail("expected zone offset")
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	p.pos++
	h, err := p.digits(2, 2)
	if err != nil {
		return 0, err
	}
	m, s := 0, 0
	colon := style == offHHcMM || style == offHHcMMss
	minutes := func(required bool) error {
		if colon {
			if p.pos < len(p.text) && p.text[p.pos] == ':' {
				p.pos++
			} else if required {
				return p.fail("expected ':' in zone offset")
			} else {
				return nil
			}
		} else if !required && (p.pos >= len(p.text) || !isDigit(p.text[p.pos])) {
			return nil
		}
		v, err := p.digits(2, 2)
		m = v
		return err
	}
	switch style {
	case offHH:
		err = minutes(false)
	case offHHMM, offHHcMM:
		err = minutes(true)
	case offHHMMss, offHHcMMss:
		if err = minutes(true); err == nil {
			if colon && p.pos < len(p.text) && p.text[p.pos] == ':' {
				p.pos++
				s, err = p.digits(2, 2)
			} else if !colon && p.pos+1 < len(p.text) && isDigit(p.text[p.pos]) {
				s, err = p.digits(2, 2)
			}
		}
	}
	if err != nil {
		return 0, err
	}
	if h > 18 || m > 59 || s > 59 {
		return 0, p.fail("zone offset out of range")
	}
	return sign * (h*3600 + m*60 + s), nil
}

func (p *parser) zoneID() (*time.Location, error) {
	start := p.pos
	for p.pos < len(p.text) && isZoneChar(p.text[p.pos]) {
		p.pos++
	}
	id := p.text[start:p.pos]
	if id == "" {
		return nil, p.fail("expected zone id")
	}
	loc, err := LoadZone(id)
	if err != nil {
		p.pos = start
		return nil, p.fail("%v", err)
	}
	return loc, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isZoneChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '/' || c == '_' || c == '-' || c == '+' || c == ':'
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}
