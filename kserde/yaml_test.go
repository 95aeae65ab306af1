package kserde

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestYAMLDeserializerGenericDocument(t *testing.T) {
	doc := []byte("name: upload\nlimit: 2kb\ntags:\n  - a\n  - ~\nparent: null\n")

	out, err := YAMLDeserializer[map[string]interface{}]()(doc)
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":   "upload",
		"limit":  "2kb",
		"tags":   []interface{}{"a", nil},
		"parent": nil,
	}, out)
}

func TestRoundTripYAML(t *testing.T) {
	in := map[string][]int{"a": {1, 2}, "b": {}}
	out, err := RoundTrip(YAML[map[string][]int](), in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestYAMLDeserializerError(t *testing.T) {
	_, err := YAMLDeserializer[map[string]string]()([]byte("a: [1, 2"))
	assert.Error(t, err)
}
