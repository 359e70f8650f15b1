package jsontime

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/unkn0wn-root/jsontime/wire"
)

// toUnit floors an epoch to the adapter's integer unit.
func toUnit(u epochUnit, sec int64, nano int32) int64 {
	switch u {
	case unitSeconds:
		return sec
	case unitDays:
		return floorDiv(sec, secondsPerDay)
	}
	return sec*1000 + int64(nano)/int64(time.Millisecond)
}

// maxEpochDay is the last day of year 999,999,999; decoded epochs stay
// within that many days of 1970 either way.
const maxEpochDay = 365241780471

func fromUnit(u epochUnit, n int64) (int64, int32, error) {
	switch u {
	case unitSeconds:
		return n, 0, checkEpoch(n)
	case unitDays:
		if n > maxEpochDay || n < -maxEpochDay {
			return 0, 0, fmt.Errorf("epoch day %d out of range", n)
		}
		return n * secondsPerDay, 0, nil
	}
	return floorDiv(n, 1000), int32(floorMod(n, 1000) * int64(time.Millisecond)), nil
}

func checkEpoch(sec int64) error {
	if sec > maxEpochDay*secondsPerDay || sec < -maxEpochDay*secondsPerDay {
		return fmt.Errorf("epoch second %d out of range", sec)
	}
	return nil
}

// selectShape renders v in the resolved shape.
func selectShape[T any](a Adapter[T], r *resolved, v T, zone *time.Location) wire.Value {
	switch r.shape {
	case ShapeNumberInt:
		sec, nano := a.epoch(v)
		return wire.Int(toUnit(a.unit(), sec, nano))
	case ShapeNumberFloat:
		return wire.Seconds(a.epoch(v))
	case ShapeArray:
		return wire.Array(a.components(v, zone)...)
	}
	return wire.String(formatText(a, r, v, zone))
}

func formatText[T any](a Adapter[T], r *resolved, v T, zone *time.Location) string {
	if r.pattern != nil {
		return r.pattern.format(a.fields(v, zone))
	}
	return a.canonical(v, zone, r.zoneID)
}

// numericText renders v as a key-safe numeric string for timestamp shapes.
func numericText[T any](a Adapter[T], r *resolved, v T) string {
	sec, nano := a.epoch(v)
	if r.shape == ShapeNumberFloat {
		return wire.FormatSeconds(sec, nano)
	}
	return strconv.FormatInt(toUnit(a.unit(), sec, nano), 10)
}

// readShape decodes any wire kind. tried collects the pattern names
// attempted for string input. numeric enables numeric text.
func readShape[T any](a Adapter[T], r *resolved, w wire.Value, zone *time.Location, numeric bool) (v T, tried []string, fellBack bool, err error) {
	switch w.Kind() {
	case wire.KindNull:
		return v, nil, false, nil
	case wire.KindInt:
		n, _ := w.Int64()
		sec, nano, err := fromUnit(a.unit(), n)
		if err != nil {
			return v, nil, false, err
		}
		return a.fromEpoch(sec, nano, zone), nil, false, nil
	case wire.KindDecimal:
		text, _ := w.DecimalText()
		sec, nano, err := wire.ParseSeconds(text)
		if err == nil {
			err = checkEpoch(sec)
		}
		if err != nil {
			return v, nil, false, err
		}
		return a.fromEpoch(sec, nano, zone), nil, false, nil
	case wire.KindArray:
		elems, _ := w.Elems()
		v, err = a.fromComponents(elems)
		return v, nil, false, err
	}
	s, _ := w.Str()
	return readText(a, r, s, zone, numeric)
}

// readText tries the configured pattern, then the canonical form, then
// numeric text when enabled.
func readText[T any](a Adapter[T], r *resolved, s string, zone *time.Location, numeric bool) (v T, tried []string, fellBack bool, err error) {
	var errs []error
	if r.pattern != nil {
		tried = append(tried, r.pattern.String())
		p, perr := r.pattern.parse(s)
		if perr == nil {
			v, perr = a.fromParsed(p, zone)
			if perr == nil {
				return v, tried, false, nil
			}
		}
		errs = append(errs, perr)
	}
	tried = append(tried, canonicalName)
	v, cerr := a.parseCanonical(s, zone)
	if cerr == nil {
		return v, tried, r.pattern != nil, nil
	}
	errs = append(errs, cerr)
	if numeric && wire.IsNumericText(s) {
		if wire.IsIntegerText(s) {
			n, nerr := strconv.ParseInt(s, 10, 64)
			if nerr == nil {
				var sec int64
				var nano int32
				if sec, nano, nerr = fromUnit(a.unit(), n); nerr == nil {
					return a.fromEpoch(sec, nano, zone), tried, false, nil
				}
			}
			errs = append(errs, nerr)
		} else {
			sec, nano, nerr := wire.ParseSeconds(s)
			if nerr == nil {
				nerr = checkEpoch(sec)
			}
			if nerr == nil {
				return a.fromEpoch(sec, nano, zone), tried, false, nil
			}
			errs = append(errs, nerr)
		}
	}
	var zero T
	return zero, tried, false, fmt.Errorf("no form matched: %w", errors.Join(errs...))
}
