// Package wire is the document-model-neutral representation of one encoded
// temporal value. Document codecs (see package codec) translate between a
// Value and their own bytes; temporal codecs only ever produce or consume
// a Value.
//
// Shapes:
//
//	String   "2023-12-23T19:22:40.758927Z"
//	Int      1703359360758
//	Decimal  1703359360.758927000   (exact, always 9 fractional digits when produced here)
//	Array    [2023,12,23,19,22,40,758927000]
//
// Array elements are Int or String values only.
package wire

import (
	"errors"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindDecimal
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindArray:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

var ErrKind = errors.New("wire: unexpected value kind")

// Value is an immutable wire value. The zero Value is Null.
type Value struct {
	kind Kind
	text string // string payload or decimal text
	num  int64
	arr  []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, text: s} }

func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Decimal returns a decimal value from its textual form. The text must be an
// optionally signed plain decimal number ("12", "-0.5", "1702236160.758927000").
func Decimal(text string) (Value, error) {
	if !isPlainDecimal(text) {
		return Value{}, &SyntaxError{Text: text, Msg: "not a plain decimal number"}
	}
	return Value{kind: KindDecimal, text: text}, nil
}

// Seconds returns the exact decimal value sec + nano/1e9 rendered with nine
// fractional digits.
func Seconds(sec int64, nano int32) Value {
	return Value{kind: KindDecimal, text: FormatSeconds(sec, nano)}
}

// Array copies elems into a new array value.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the payload of a String value.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Int64 returns the payload of an Int value.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// DecimalText returns the textual form of a Decimal value.
func (v Value) DecimalText() (string, bool) {
	if v.kind != KindDecimal {
		return "", false
	}
	return v.text, true
}

// Elems returns a copy of the elements of an Array value.
func (v Value) Elems() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, true
}

func (v Value) Len() int { return len(v.arr) }

// Equal reports whether v and o have the same kind and payload. Decimals
// compare textually.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString, KindDecimal:
		return v.text == o.text
	case KindInt:
		return v.num == o.num
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v the way a JSON writer would.
func (v Value) String() string {
	var sb strings.Builder
	v.appendTo(&sb)
	return sb.String()
}

func (v Value) appendTo(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindString:
		sb.WriteString(strconv.Quote(v.text))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.num, 10))
	case KindDecimal:
		sb.WriteString(v.text)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.appendTo(sb)
		}
		sb.WriteByte(']')
	}
}

// SyntaxError reports malformed numeric text.
type SyntaxError struct {
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return "wire: " + strconv.Quote(e.Text) + ": " + e.Msg
}
