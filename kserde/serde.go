// Package kserde holds the byte codecs used by toolbelt to move values
// across a serialized form: deep copies through a round trip and the CLI's
// document input and output.
package kserde

type Serde[T any] struct {
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type Serializer[T any] func(T) ([]byte, error)

type Deserializer[T any] func([]byte) (T, error)

// RoundTrip serializes v and deserializes the result into a fresh T.
func RoundTrip[T any](s Serde[T], v T) (T, error) {
	b, err := s.Serializer(v)
	if err != nil {
		return *new(T), err
	}
	return s.Deserializer(b)
}
