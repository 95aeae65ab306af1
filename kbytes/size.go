package kbytes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Size is a byte count that reads and writes as a size string in config
// files. Unlike Parse, decoding an invalid string is an error. Encoding is
// exact: a unit is only used when it divides the count.
type Size int64

func (s Size) Bytes() int64 { return int64(s) }

// String is the rounded, human form from Format.
func (s Size) String() string { return Format(int64(s)) }

func (s Size) exact() string {
	n := int64(s)
	if n < 0 {
		return strconv.FormatInt(n, 10)
	}
	for _, u := range units {
		if n >= u.size && n%u.size == 0 {
			return strconv.FormatInt(n/u.size, 10) + u.suffix
		}
	}
	return strconv.FormatInt(n, 10) + "b"
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.exact()), nil
}

// UnmarshalText accepts size strings with surrounding spaces and plain,
// possibly negative, integers.
func (s *Size) UnmarshalText(text []byte) error {
	str := strings.TrimSpace(string(text))
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		*s = Size(n)
		return nil
	}
	n, err := ParseStrict(str)
	if err != nil {
		return err
	}
	*s = Size(n)
	return nil
}

// UnmarshalJSON accepts a plain number of bytes or a size string.
func (s *Size) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*s = Size(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSize, b)
	}
	return s.UnmarshalText([]byte(str))
}

func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.exact())
}

func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidSize, value.Line)
	}
	return s.UnmarshalText([]byte(value.Value))
}

func (s Size) MarshalYAML() (interface{}, error) {
	return s.exact(), nil
}
