package pattern

import (
	"strconv"
	"strings"
	"time"
)

// Fields is the broken-down value a layout formats from or parses into.
type Fields struct {
	Year       int
	Month      time.Month
	Day        int
	Weekday    time.Weekday
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Offset     int    // seconds east of UTC
	ZoneID     string // empty when the value has no region id
}

// FieldsOf breaks t down in its own location. The zone id is the location
// name when it is a region id.
func FieldsOf(t time.Time) Fields {
	_, off := t.Zone()
	f := Fields{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Weekday:    t.Weekday(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Offset:     off,
	}
	if name := t.Location().String(); IsRegionID(name) {
		f.ZoneID = name
	}
	return f
}

// IsRegionID reports whether name is a region id rather than an offset id,
// an unnamed zone or the process-local zone.
func IsRegionID(name string) bool {
	if name == "" || name == "Local" || name == "Z" {
		return false
	}
	return name[0] != '+' && name[0] != '-'
}

// Format renders f.
func (l *Layout) Format(f Fields) string {
	var sb strings.Builder
	sb.Grow(len(l.src) + 8)
	for _, tok := range l.tokens {
		switch tok.f {
		case fLiteral:
			sb.WriteString(tok.lit)
		case fYear:
			y := f.Year
			if tok.width == 2 {
				y = ((y % 100) + 100) % 100
			}
			pad(&sb, y, tok.width)
		case fMonth:
			pad(&sb, int(f.Month), tok.width)
		case fMonthText:
			name := f.Month.String()
			if tok.width == 3 && len(name) > 3 {
				name = name[:3]
			}
			sb.WriteString(name)
		case fDay:
			pad(&sb, f.Day, tok.width)
		case fWeekday:
			name := f.Weekday.String()
			if tok.width < 4 {
				name = name[:3]
			}
			sb.WriteString(name)
		case fAMPM:
			if f.Hour < 12 {
				sb.WriteString("AM")
			} else {
				sb.WriteString("PM")
			}
		case fHour:
			pad(&sb, f.Hour, tok.width)
		case fHour12:
			h := f.Hour % 12
			if h == 0 {
				h = 12
			}
			pad(&sb, h, tok.width)
		case fMinute:
			pad(&sb, f.Minute, tok.width)
		case fSecond:
			pad(&sb, f.Second, tok.width)
		case fFraction:
			digits := strconv.Itoa(f.Nanosecond + 1_000_000_000)[1:]
			sb.WriteString(digits[:tok.width])
		case fOffset:
			sb.WriteString(FormatOffset(f.Offset, tok.style, tok.zulu))
		case fZoneID:
			if f.ZoneID != "" {
				sb.WriteString(f.ZoneID)
			} else {
				sb.WriteString(OffsetID(f.Offset))
			}
		}
	}
	return sb.String()
}

// OffsetID renders an offset the way offset zone ids are written:
// "Z", "+03:00", "-04:30", "+05:45:30".
func OffsetID(off int) string {
	return FormatOffset(off, offHHcMMss, true)
}

// FormatOffset renders off in one of the X/x letter styles.
func FormatOffset(off, style int, zulu bool) string {
	if off == 0 && zulu {
		return "Z"
	}
	var sb strings.Builder
	if off < 0 {
		sb.WriteByte('-')
		off = -off
	} else {
		sb.WriteByte('+')
	}
	h, m, s := off/3600, (off/60)%60, off%60
	pad(&sb, h, 2)
	switch style {
	case offHH:
		if m != 0 {
			pad(&sb, m, 2)
		}
	case offHHMM:
		pad(&sb, m, 2)
	case offHHcMM:
		sb.WriteByte(':')
		pad(&sb, m, 2)
	case offHHMMss:
		pad(&sb, m, 2)
		if s != 0 {
			pad(&sb, s, 2)
		}
	case offHHcMMss:
		sb.WriteByte(':')
		pad(&sb, m, 2)
		if s != 0 {
			sb.WriteByte(':')
			pad(&sb, s, 2)
		}
	}
	return sb.String()
}

func pad(sb *strings.Builder, v, width int) {
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(s)
}
