// Package models defines the value types produced by worksheet extraction.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind identifies which representation a Value carries.
type Kind int

const (
	// KindEmpty is an absent or placeholder cell. The zero Value is empty.
	KindEmpty Kind = iota
	// KindString is plain text (inline, shared, or unparseable numeric).
	KindString
	// KindBool is a boolean cell.
	KindBool
	// KindInt is a numeric cell with no fractional part.
	KindInt
	// KindFloat is a numeric cell with a fractional part.
	KindFloat
	// KindDate is a date-styled cell rendered as ISO-8601 text.
	KindDate
)

// Value is a single cell value. Exactly one representation is populated,
// selected once at parse time.
type Value struct {
	Kind  Kind
	Str   string
	Bool  bool
	Int   int64
	Float float64
}

// Empty returns the empty-cell value.
func Empty() Value { return Value{} }

// String wraps plain text.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int wraps an integral number.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Float wraps a fractional number.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// Date wraps an ISO-8601 timestamp string.
func Date(iso string) Value { return Value{Kind: KindDate, Str: iso} }

// MarshalJSON encodes the populated representation only.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return strconv.AppendBool(nil, v.Bool), nil
	case KindInt:
		return strconv.AppendInt(nil, v.Int, 10), nil
	case KindFloat:
		return json.Marshal(v.Float)
	default:
		return json.Marshal(v.Str)
	}
}

// String returns the textual form of the value, used for header names and
// blankness checks.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Str
	}
}

// IsBlank reports whether the value's string form is empty after trimming.
func (v Value) IsBlank() bool {
	return strings.TrimSpace(v.String()) == ""
}
