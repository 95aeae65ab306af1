// Package kbytes converts between byte counts and human size strings such
// as "2kb" or "1.50mb". Units are binary: 1kb is 1024 bytes.
package kbytes

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	B  int64 = 1
	KB       = 1024 * B
	MB       = 1024 * KB
	GB       = 1024 * MB
	TB       = 1024 * GB
)

var ErrInvalidSize = errors.New("invalid byte size")

var sizePattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)([kmgt]b?|b)?$`)

var units = []struct {
	suffix string
	size   int64
}{
	{"tb", TB},
	{"gb", GB},
	{"mb", MB},
	{"kb", KB},
}

func multiplier(unit string) int64 {
	switch strings.TrimSuffix(strings.ToLower(unit), "b") {
	case "t":
		return TB
	case "g":
		return GB
	case "m":
		return MB
	case "k":
		return KB
	default:
		return B
	}
}

// ParseStrict parses a size string like "512", "2k", "3MB" or "1.50gb".
// Fractional sizes are rounded to the nearest byte.
func ParseStrict(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	mult := multiplier(m[2])
	if !strings.Contains(m[1], ".") {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || n > math.MaxInt64/mult {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidSize, s)
		}
		return n * mult, nil
	}

	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	bytes := math.Round(f * float64(mult))
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidSize, s)
	}
	return int64(bytes), nil
}

// Parse is ParseStrict with 0 standing in for any failure.
func Parse(s string) int64 {
	n, err := ParseStrict(s)
	if err != nil {
		return 0
	}
	return n
}

// ToBytes returns numbers unchanged (floats are truncated) and parses
// strings with Parse.
func ToBytes[T ~string | constraints.Integer | constraints.Float](v T) int64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Parse(rv.String())
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	default:
		return rv.Int()
	}
}

// Format renders n with the largest unit that keeps the quotient below 1024.
// Counts below 1KB are printed as they are.
func Format[T constraints.Integer | constraints.Float](n T) string {
	f := float64(n)
	if f < float64(KB) {
		return plain(any(n)) + "b"
	}
	for i := len(units) - 1; i >= 0; i-- {
		u := units[i]
		if i == 0 || f < float64(u.size)*1024 {
			// Ties round away from zero, FormatFloat alone rounds them to even.
			q := math.Round(f/float64(u.size)*100) / 100
			return strconv.FormatFloat(q, 'f', 2, 64) + u.suffix
		}
	}
	return ""
}

func plain(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return fmt.Sprintf("%d", v)
	}
}
