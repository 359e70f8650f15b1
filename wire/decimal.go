package wire

import (
	"strconv"
	"strings"
)

const nanosPerSecond = 1_000_000_000

// FormatSeconds renders sec + nano/1e9 as an exact decimal with nine
// fractional digits. nano must be in [0, 1e9). Negative instants are rendered
// as their true signed value: (-2, 500000000) is "-1.500000000".
func FormatSeconds(sec int64, nano int32) string {
	neg := sec < 0
	ip, frac := sec, int64(nano)
	if neg && frac > 0 {
		ip++
		frac = nanosPerSecond - frac
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
		if ip < 0 {
			ip = -ip
		}
	}
	sb.WriteString(strconv.FormatUint(uint64(ip), 10))
	sb.WriteByte('.')
	fs := strconv.FormatInt(frac, 10)
	for i := len(fs); i < 9; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(fs)
	return sb.String()
}

// ParseSeconds is the inverse of FormatSeconds. It accepts any plain decimal;
// digits past the ninth fractional place are truncated toward negative
// infinity so that the result always satisfies 0 <= nano < 1e9.
func ParseSeconds(text string) (sec int64, nano int32, err error) {
	if !isPlainDecimal(text) {
		return 0, 0, &SyntaxError{Text: text, Msg: "not a plain decimal number"}
	}
	s := text
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var ip int64
	if intPart != "" {
		ip, err = strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, 0, &SyntaxError{Text: text, Msg: "seconds out of range"}
		}
	}
	truncated := false
	if len(fracPart) > 9 {
		truncated = strings.Trim(fracPart[9:], "0") != ""
		fracPart = fracPart[:9]
	}
	var frac int64
	if fracPart != "" {
		frac, _ = strconv.ParseInt(fracPart, 10, 64)
		for i := len(fracPart); i < 9; i++ {
			frac *= 10
		}
	}
	if !neg {
		return ip, int32(frac), nil
	}
	if truncated {
		frac++
		if frac == nanosPerSecond {
			ip++
			frac = 0
		}
	}
	if frac == 0 {
		return -ip, 0, nil
	}
	return -ip - 1, int32(nanosPerSecond - frac), nil
}

// IsNumericText reports whether s looks like an integer or plain decimal.
func IsNumericText(s string) bool { return isPlainDecimal(s) }

// IsIntegerText reports whether s is an optionally signed run of digits.
func IsIntegerText(s string) bool {
	return isPlainDecimal(s) && !strings.Contains(s, ".")
}

func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
