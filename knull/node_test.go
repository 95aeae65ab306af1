package knull

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromAnyKinds(t *testing.T) {
	assert.Equal(t, KindNull, FromAny(nil).Kind())
	assert.Equal(t, KindScalar, FromAny(3).Kind())
	assert.Equal(t, KindScalar, FromAny(struct{ A int }{1}).Kind())
	assert.Equal(t, KindMapping, FromAny(map[int]string{1: "a"}).Kind())
	assert.Equal(t, KindSequence, FromAny([]string{"a"}).Kind())
	assert.Equal(t, KindSequence, FromAny([2]int{1, 2}).Kind())
	assert.Equal(t, KindMapping, FromAny(map[string]int{"a": 1}).Kind())
	assert.Equal(t, KindNull, FromAny([]int(nil)).Kind())
}

func TestNodeAccessors(t *testing.T) {
	n := FromAny(map[string]any{
		"b":    []any{1, nil, "x"},
		"a":    nil,
		"name": "n",
	})

	assert.Equal(t, 3, n.Len())
	assert.Equal(t, []string{"a", "b", "name"}, n.Keys())

	seq, ok := n.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, seq.Len())
	assert.True(t, seq.Index(1).IsNull())
	assert.Equal(t, any("x"), seq.Index(2).Any())
	assert.True(t, seq.Index(10).IsNull())

	_, ok = n.Get("missing")
	assert.False(t, ok)

	cleaned := Omit(n)
	assert.Equal(t, []string{"b", "name"}, cleaned.Keys())
	b, _ := cleaned.Get("b")
	assert.Equal(t, 2, b.Len())
}

func TestConstructors(t *testing.T) {
	n := Mapping(map[string]Node{
		"list": Sequence(Scalar(1), Null(), Sequence(Null())),
		"gone": Null(),
	})

	assert.Equal(t, any(map[string]any{"list": []any{1, []any{}}}), Omit(n).Any())
	assert.Equal(t, 0, Mapping(nil).Len())
	assert.Equal(t, 0, Scalar("x").Len())
}
