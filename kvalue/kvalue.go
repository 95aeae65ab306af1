// Package kvalue guesses the type of loosely written values, the kind found
// in environment variables and query strings: "on" is true, "3.14" is a
// number, anything else stays a string.
package kvalue

import (
	"encoding/json"
	"math"
	"os"
	"regexp"
	"strconv"
)

type Kind uint8

const (
	Undefined Kind = iota
	Bool
	Number
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	default:
		return "undefined"
	}
}

var (
	falsePattern  = regexp.MustCompile(`(?i)^(no|n|false|f|off)$`)
	truePattern   = regexp.MustCompile(`(?i)^(yes|y|true|t|on)$`)
	numberPattern = regexp.MustCompile(`^[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|Infinity)$`)
)

// Value is the result of detection. The zero Value is Undefined.
type Value struct {
	kind Kind
	b    bool
	f    float64
	s    string
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUndefined() bool { return v.kind == Undefined }

// Bool reports the boolean and whether v holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Float reports the number and whether v holds one.
func (v Value) Float() (float64, bool) { return v.f, v.kind == Number }

// String returns the original text for String values and a formatted form
// for the other kinds.
func (v Value) String() string {
	switch v.kind {
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		return v.s
	default:
		return ""
	}
}

// Any unwraps v into nil, bool, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.f
	case String:
		return v.s
	default:
		return nil
	}
}

// MarshalJSON writes the detected value. Infinite numbers have no JSON form
// and are written as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == Number && math.IsInf(v.f, 0) {
		return json.Marshal(v.String())
	}
	return json.Marshal(v.Any())
}

// Detect classifies s. A nil s is Undefined.
func Detect(s *string) Value {
	if s == nil {
		return Value{}
	}
	return DetectString(*s)
}

func DetectString(s string) Value {
	switch {
	case falsePattern.MatchString(s):
		return Value{kind: Bool, b: false}
	case truePattern.MatchString(s):
		return Value{kind: Bool, b: true}
	case numberPattern.MatchString(s):
		if f, err := parseNumber(s); err == nil {
			return Value{kind: Number, f: f}
		}
	}
	return Value{kind: String, s: s}
}

func parseNumber(s string) (float64, error) {
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflowing literals still parse to ±Inf.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}

// Env detects the value of the environment variable key. An unset
// variable is Undefined.
func Env(key string) Value {
	s, ok := os.LookupEnv(key)
	if !ok {
		return Value{}
	}
	return DetectString(s)
}
