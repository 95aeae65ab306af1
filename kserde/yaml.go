package kserde

import (
	"gopkg.in/yaml.v3"
)

func YAMLSerializer[T any]() Serializer[T] {
	return func(t T) ([]byte, error) {
		return yaml.Marshal(t)
	}
}

func YAMLDeserializer[T any]() Deserializer[T] {
	return func(b []byte) (T, error) {
		var deserialized T
		if err := yaml.Unmarshal(b, &deserialized); err != nil {
			return *new(T), err
		}
		return deserialized, nil
	}
}

func YAML[T any]() Serde[T] {
	return Serde[T]{
		Serializer:   YAMLSerializer[T](),
		Deserializer: YAMLDeserializer[T](),
	}
}
