// Package pattern implements date/time patterns written with the familiar
// letter syntax (yyyy-MM-dd'T'HH:mm:ss.SSSXXX). A pattern compiles into a
// token program used both to format and to parse.
//
// Supported letters:
//
//	y u      year (yy = two-digit year, base 2000)
//	M L      month (M/MM numeric, MMM short name, MMMM full name)
//	d        day of month
//	E        day of week (E..EEE short, EEEE full)
//	a        AM/PM marker
//	H h      hour of day (0-23), clock hour of am/pm (1-12; needs a)
//	m s      minute, second
//	S        fraction of second, one digit per letter (1-9)
//	X x Z    zone offset (X uses "Z" for zero, x and Z never do)
//	VV       zone id
//
// Text in single quotes is literal; two single quotes are one quote.
// Any other non-letter character is literal.
package pattern

import (
	"fmt"
	"strings"
)

type field uint8

const (
	fLiteral field = iota
	fYear
	fMonth
	fMonthText
	fDay
	fWeekday
	fAMPM
	fHour
	fHour12
	fMinute
	fSecond
	fFraction
	fOffset
	fZoneID
)

// offset styles
const (
	offHH      = iota + 1 // +HH, minutes only when non-zero: +HHmm
	offHHMM               // +HHMM
	offHHcMM              // +HH:MM
	offHHMMss             // +HHMM[SS]
	offHHcMMss            // +HH:MM[:SS]
)

type token struct {
	f     field
	width int
	lit   string
	style int  // offset style
	zulu  bool // offset: zero rendered as "Z"
}

// Layout is a compiled pattern. Layouts are immutable.
type Layout struct {
	src    string
	tokens []token
	has    uint32
}

// presence bits
const (
	hasDate uint32 = 1 << iota
	hasTime
	hasOffset
	hasZoneID
	hasFraction
)

func (l *Layout) String() string { return l.src }

// HasDate reports whether the layout reads or writes any calendar field.
func (l *Layout) HasDate() bool { return l.has&hasDate != 0 }

// HasTime reports whether the layout reads or writes any time-of-day field.
func (l *Layout) HasTime() bool { return l.has&hasTime != 0 }

// HasOffset reports whether the layout carries a zone offset.
func (l *Layout) HasOffset() bool { return l.has&hasOffset != 0 }

// HasZoneID reports whether the layout carries a zone id (VV).
func (l *Layout) HasZoneID() bool { return l.has&hasZoneID != 0 }

// CompileError describes an invalid pattern.
type CompileError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern %q: position %d: %s", e.Pattern, e.Pos, e.Msg)
}

// Compile parses src into a Layout. Prefer Get, which caches.
func Compile(src string) (*Layout, error) {
	if src == "" {
		return nil, &CompileError{Pattern: src, Msg: "empty pattern"}
	}
	l := &Layout{src: src}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			l.tokens = append(l.tokens, token{f: fLiteral, lit: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\'':
			if i+1 < len(src) && src[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if j >= len(src) {
					return nil, &CompileError{Pattern: src, Pos: i, Msg: "unterminated quote"}
				}
				if src[j] == '\'' {
					if j+1 < len(src) && src[j+1] == '\'' {
						lit.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				lit.WriteByte(src[j])
				j++
			}
			i = j + 1
		case isLetter(c):
			n := 1
			for i+n < len(src) && src[i+n] == c {
				n++
			}
			tok, err := letterToken(c, n)
			if err != nil {
				return nil, &CompileError{Pattern: src, Pos: i, Msg: err.Error()}
			}
			flush()
			l.tokens = append(l.tokens, tok)
			l.has |= presence(tok.f)
			i += n
		case c == '[' || c == ']' || c == '{' || c == '}' || c == '#':
			return nil, &CompileError{Pattern: src, Pos: i, Msg: fmt.Sprintf("reserved character %q", c)}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	if l.uses(fHour12) && !l.uses(fAMPM) {
		return nil, &CompileError{Pattern: src, Msg: "clock hour h needs an a marker"}
	}
	return l, nil
}

func (l *Layout) uses(f field) bool {
	for _, t := range l.tokens {
		if t.f == f {
			return true
		}
	}
	return false
}

func presence(f field) uint32 {
	switch f {
	case fYear, fMonth, fMonthText, fDay, fWeekday:
		return hasDate
	case fAMPM, fHour, fHour12, fMinute, fSecond:
		return hasTime
	case fFraction:
		return hasTime | hasFraction
	case fOffset:
		return hasOffset
	case fZoneID:
		return hasZoneID
	}
	return 0
}

func letterToken(c byte, n int) (token, error) {
	tooMany := fmt.Errorf("too many pattern letters: %s", strings.Repeat(string(c), n))
	switch c {
	case 'y', 'u':
		return token{f: fYear, width: n}, nil
	case 'M', 'L':
		switch {
		case n <= 2:
			return token{f: fMonth, width: n}, nil
		case n <= 4:
			return token{f: fMonthText, width: n}, nil
		}
		return token{}, tooMany
	case 'd':
		if n > 2 {
			return token{}, tooMany
		}
		return token{f: fDay, width: n}, nil
	case 'E':
		if n > 4 {
			return token{}, tooMany
		}
		return token{f: fWeekday, width: n}, nil
	case 'a':
		if n > 1 {
			return token{}, tooMany
		}
		return token{f: fAMPM, width: n}, nil
	case 'H', 'h', 'm', 's':
		if n > 2 {
			return token{}, tooMany
		}
		f := map[byte]field{'H': fHour, 'h': fHour12, 'm': fMinute, 's': fSecond}[c]
		return token{f: f, width: n}, nil
	case 'S':
		if n > 9 {
			return token{}, tooMany
		}
		return token{f: fFraction, width: n}, nil
	case 'X', 'x':
		if n > 5 {
			return token{}, tooMany
		}
		return token{f: fOffset, style: n, zulu: c == 'X'}, nil
	case 'Z':
		switch {
		case n <= 3:
			return token{f: fOffset, style: offHHMM}, nil
		case n == 5:
			return token{f: fOffset, style: offHHcMMss, zulu: true}, nil
		}
		return token{}, fmt.Errorf("unsupported pattern letters: %s", strings.Repeat("Z", n))
	case 'V':
		if n != 2 {
			return token{}, fmt.Errorf("pattern letter V must appear twice")
		}
		return token{f: fZoneID}, nil
	}
	return token{}, fmt.Errorf("unsupported pattern letter %q", c)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
