// Package knull strips null entries out of loosely typed documents, such as
// the result of decoding JSON or YAML into interface{} values.
package knull

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

// Node is a document value resolved into one of four shapes. The zero Node
// is null.
type Node struct {
	kind    Kind
	scalar  any
	seq     []Node
	mapping map[string]Node
}

func Null() Node { return Node{} }

func Scalar(v any) Node { return Node{kind: KindScalar, scalar: v} }

func Sequence(items ...Node) Node { return Node{kind: KindSequence, seq: items} }

func Mapping(m map[string]Node) Node {
	if m == nil {
		m = map[string]Node{}
	}
	return Node{kind: KindMapping, mapping: m}
}

func (n Node) Kind() Kind { return n.kind }

func (n Node) IsNull() bool { return n.kind == KindNull }

// Len is the number of elements or entries, 0 for scalars and null.
func (n Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.seq)
	case KindMapping:
		return len(n.mapping)
	}
	return 0
}

// Keys returns the mapping keys in sorted order.
func (n Node) Keys() []string {
	keys := maps.Keys(n.mapping)
	slices.Sort(keys)
	return keys
}

func (n Node) Get(key string) (Node, bool) {
	v, ok := n.mapping[key]
	return v, ok
}

func (n Node) Index(i int) Node {
	if i < 0 || i >= len(n.seq) {
		return Null()
	}
	return n.seq[i]
}

// Any converts n back into plain Go values: nil, the scalar, []any or
// map[string]any.
func (n Node) Any() any {
	switch n.kind {
	case KindScalar:
		return n.scalar
	case KindSequence:
		out := make([]any, len(n.seq))
		for i, item := range n.seq {
			out[i] = item.Any()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(n.mapping))
		for k, v := range n.mapping {
			out[k] = v.Any()
		}
		return out
	}
	return nil
}

var bytesType = reflect.TypeOf([]byte(nil))

// FromAny resolves v into a Node tree. Nil interfaces, pointers, maps and
// slices are null. Maps are mappings, slices and arrays other than []byte
// are sequences, and everything else is a scalar. Map keys that are not
// strings, as yaml.v3 produces for documents with numeric keys, are
// rendered with fmt.Sprint; keys rendering the same collapse into one.
func FromAny(v any) Node {
	if v == nil {
		return Null()
	}

	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]Node, len(x))
		for k, e := range x {
			m[k] = FromAny(e)
		}
		return Mapping(m)
	case []any:
		return fromSlice(len(x), func(i int) any { return x[i] })
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		m := make(map[string]Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[mapKey(iter.Key())] = FromAny(iter.Value().Interface())
		}
		return Mapping(m)
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		if rv.Type() == bytesType {
			return Scalar(v)
		}
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Array:
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	}
	return Scalar(v)
}

func fromSlice(n int, at func(int) any) Node {
	items := make([]Node, n)
	for i := range items {
		items[i] = FromAny(at(i))
	}
	return Sequence(items...)
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
