// Package ktype holds small generic types: an optional value and a
// positional string template.
package ktype

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Nullable is a value that may be absent. The zero Nullable is absent.
// Struct fields of this type decode JSON and YAML null as absent, which
// makes them the building block for partially filled configs.
type Nullable[T any] struct {
	value T
	valid bool
}

func Some[T any](v T) Nullable[T] { return Nullable[T]{value: v, valid: true} }

func None[T any]() Nullable[T] { return Nullable[T]{} }

// FromPtr is absent for a nil p.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (n Nullable[T]) Valid() bool { return n.valid }

func (n Nullable[T]) Get() (T, bool) { return n.value, n.valid }

func (n Nullable[T]) OrElse(fallback T) T {
	if !n.valid {
		return fallback
	}
	return n.value
}

// Ptr returns a pointer to a copy of the value, nil when absent.
func (n Nullable[T]) Ptr() *T {
	if !n.valid {
		return nil
	}
	v := n.value
	return &v
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}

func (n Nullable[T]) MarshalYAML() (interface{}, error) {
	if !n.valid {
		return nil, nil
	}
	return n.value, nil
}

func (n *Nullable[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*n = None[T]()
		return nil
	}
	var v T
	if err := value.Decode(&v); err != nil {
		return err
	}
	*n = Some(v)
	return nil
}
