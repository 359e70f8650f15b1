package jsontime

import (
	"fmt"
	"strings"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Shape is the wire representation family of an encoded value.
//
// Precision per shape:
//   - ShapeString: the pattern's precision. Canonical forms keep full
//     nanoseconds; a pattern such as "HH:mm" drops everything below minutes.
//     Legacy Date is millisecond precision everywhere.
//   - ShapeNumberInt: truncated (floored) to the kind's unit: milliseconds
//     for Instant, OffsetDateTime, ZonedDateTime, OffsetTime and Date;
//     seconds for LocalTime and LocalDateTime; days for LocalDate. The
//     offset and region of OffsetDateTime, ZonedDateTime and OffsetTime are
//     not carried and come back from zone resolution.
//   - ShapeNumberFloat: exact seconds with nine fractional digits. Same zone
//     caveat as ShapeNumberInt.
//   - ShapeArray: full nanosecond precision, offset and region included.
type Shape uint8

const (
	// ShapeDefault leaves the decision to the next precedence level.
	ShapeDefault Shape = iota
	ShapeString
	// ShapeNumber is a timestamp whose int/float form follows the
	// nanoseconds feature.
	ShapeNumber
	ShapeNumberInt
	ShapeNumberFloat
	ShapeArray
)

var shapeNames = [...]string{
	ShapeDefault:     "default",
	ShapeString:      "string",
	ShapeNumber:      "number",
	ShapeNumberInt:   "number_int",
	ShapeNumberFloat: "number_float",
	ShapeArray:       "array",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

func ParseShape(s string) (Shape, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for i, n := range shapeNames {
		if n == norm {
			return Shape(i), nil
		}
	}
	return ShapeDefault, fmt.Errorf("jsontime: unknown shape %q", s)
}

// numeric reports whether s is one of the timestamp shapes.
func (s Shape) numeric() bool {
	return s == ShapeNumber || s == ShapeNumberInt || s == ShapeNumberFloat
}

// wireKind is the wire kind an effective shape produces.
func (s Shape) wireKind() wire.Kind {
	switch s {
	case ShapeNumberInt:
		return wire.KindInt
	case ShapeNumberFloat:
		return wire.KindDecimal
	case ShapeArray:
		return wire.KindArray
	}
	return wire.KindString
}
