// Package value provides the closed variant type used for index labels and
// column payloads.
//
// A Value holds exactly one of: bool, int64, float64, string or time.Time.
// The zero Value is invalid and stands for "no label"; absence of *data* is
// expressed one level up, by mole.Cell, not by a value kind.
//
// Equality is per-variant and never crosses kinds: Int(5) is not equal to
// Float(5) or String("5").
package value

import (
	"math"
	"strconv"
	"time"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindTime represents a date-time value.
	KindTime
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "invalid"
	}
}

// Value is a small typed value used for labels and cells.
//
// Values are immutable: every field is private and set only by the package
// constructors. The representation keeps comparisons free of reflection and
// fmt-based stringification.
type Value struct {
	kind Kind
	i64  int64
	f64  float64
	s    string
	b    bool
	t    time.Time
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{kind: KindInt, i64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{kind: KindFloat, f64: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Time returns a date-time Value.
func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v is the zero (invalid) Value.
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsTime returns the time value if Kind is KindTime.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// Equal reports whether v and o hold the same kind and the same payload.
//
// Floats compare by bit pattern so NaN labels stay self-equal; times compare
// with time.Time.Equal so the same instant matches across locations.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i64 == o.i64
	case KindFloat:
		return math.Float64bits(v.f64) == math.Float64bits(o.f64)
	case KindString:
		return v.s == o.s
	case KindTime:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// Key returns a stable string representation for use as a map key.
//
// Keys of different kinds never collide: each is tagged with a kind prefix.
func (v Value) Key() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "b:1"
		}
		return "b:0"
	case KindInt:
		return "i:" + strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.f64), 16)
	case KindString:
		return "s:" + v.s
	case KindTime:
		return "t:" + strconv.FormatInt(v.t.UnixNano(), 10)
	default:
		return "invalid"
	}
}

// String returns the human-readable form used by the renderers.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindString:
		return v.s
	case KindTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}
