package jsontime

import (
	"fmt"
	"strings"
)

// Kind identifies a temporal type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInstant
	KindLocalDate
	KindLocalTime
	KindLocalDateTime
	KindOffsetTime
	KindOffsetDateTime
	KindZonedDateTime
	KindDate // legacy date, an instant with millisecond precision
)

var kindNames = [...]string{
	KindInvalid:        "invalid",
	KindInstant:        "instant",
	KindLocalDate:      "local_date",
	KindLocalTime:      "local_time",
	KindLocalDateTime:  "local_date_time",
	KindOffsetTime:     "offset_time",
	KindOffsetDateTime: "offset_date_time",
	KindZonedDateTime:  "zoned_date_time",
	KindDate:           "date",
}

// Kinds lists every valid kind.
var Kinds = []Kind{
	KindInstant, KindLocalDate, KindLocalTime, KindLocalDateTime,
	KindOffsetTime, KindOffsetDateTime, KindZonedDateTime, KindDate,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind accepts the snake_case names used by String ("offset_date_time")
// and the same names without separators ("OffsetDateTime").
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(s))
	for _, k := range Kinds {
		if strings.ReplaceAll(kindNames[k], "_", "") == norm {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("jsontime: unknown temporal kind %q", s)
}

// ownZoneVaries reports whether values of k carry a zone of their own.
// Instants and legacy dates are always read in UTC.
func (k Kind) ownZoneVaries() bool {
	switch k {
	case KindOffsetTime, KindOffsetDateTime, KindZonedDateTime:
		return true
	}
	return false
}

// zoned reports whether values of the kind take part in zone resolution.
func (k Kind) zoned() bool {
	switch k {
	case KindLocalDate, KindLocalTime, KindLocalDateTime, KindInvalid:
		return false
	}
	return true
}
