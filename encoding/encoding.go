// Package encoding produces the byte forms keys are hashed from: the canonical key bytes used by the
// default hash functions, and a pluggable Marshaler for keys that opt in to hashing through a
// serializer.
package encoding

import (
	"encoding/json"
)

// Marshaler interface specifies encoding to byte array and back to the object.
type Marshaler interface {
	// Encodes any object to byte array.
	Marshal(v any) ([]byte, error)
	// Decodes byte array back to its Object type.
	Unmarshal(data []byte, v any) error
}

// Global Default marshaler.
var DefaultMarshaler = NewMarshaler()

type defaultMarshaler struct{}

// Returns the default marshaler which uses the golang's json package. JSON output of a struct is
// deterministic (fields in declaration order), which is what key hashing requires.
func NewMarshaler() Marshaler {
	return &defaultMarshaler{}
}

// Encodes any object to a byte array.
func (m defaultMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decodes a byte array back to its Object type.
func (m defaultMarshaler) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal that can do byte array pass-through.
func Marshal[T any](m Marshaler, v T) ([]byte, error) {
	switch b := any(v).(type) {
	case *[]byte:
		return *b, nil
	case []byte:
		return b, nil
	default:
		return m.Marshal(v)
	}
}
