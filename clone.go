package toolbelt

import (
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/birdayz/toolbelt/kserde"
)

// CopyStrategy selects how Clone produces a deep copy.
type CopyStrategy uint8

const (
	// CopyStructural walks the value with reflection, keeping concrete
	// types and pointers. Unexported struct fields are left zero.
	CopyStructural CopyStrategy = iota

	// CopySerialized round trips the value through JSON. Unexported
	// fields, functions, channels and cycles do not survive; values JSON
	// rejects outright are reported as errors.
	CopySerialized
)

func (s CopyStrategy) String() string {
	switch s {
	case CopyStructural:
		return "structural"
	case CopySerialized:
		return "serialized"
	default:
		return fmt.Sprintf("CopyStrategy(%d)", uint8(s))
	}
}

// Clone returns a deep copy of v.
func Clone[T any](v T, opts ...Option) (T, error) {
	o := newOptions(opts)
	return clone(v, o.strategy)
}

func clone[T any](v T, strategy CopyStrategy) (T, error) {
	switch strategy {
	case CopyStructural:
		if any(v) == nil {
			return v, nil
		}
		out, err := copystructure.Copy(v)
		if err != nil {
			return *new(T), fmt.Errorf("structural copy of %T: %w", v, err)
		}
		if out == nil {
			return *new(T), nil
		}
		copied, ok := out.(T)
		if !ok {
			return *new(T), fmt.Errorf("structural copy of %T produced %T", v, out)
		}
		return copied, nil
	case CopySerialized:
		out, err := kserde.RoundTrip(kserde.JSON[T](), v)
		if err != nil {
			return *new(T), fmt.Errorf("serialized copy of %T: %w", v, err)
		}
		return out, nil
	default:
		return *new(T), fmt.Errorf("unknown copy strategy %s", strategy)
	}
}

// OmitShallowProps deep copies m and removes keys from the copy's top
// level. Nested values are copied but not otherwise touched.
func OmitShallowProps[K comparable, V any](m map[K]V, keys []K, opts ...Option) (map[K]V, error) {
	o := newOptions(opts)
	out, err := clone(m, o.strategy)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out, nil
}
