package dstruct

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a thin wrapper over github.com/google/uuid.UUID so keys of this type hash through
// their raw 16 bytes.
type UUID uuid.UUID

// NilUUID is the zero-value UUID.
var NilUUID UUID

// ParseUUID converts a string to a UUID. It returns an error if the input is not a valid UUID.
func ParseUUID(id string) (UUID, error) {
	u, err := uuid.Parse(id)
	return UUID(u), err
}

// NewUUID returns a new randomly generated UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// IsNil reports whether the UUID equals the zero-value UUID.
func (id UUID) IsNil() bool {
	return bytes.Equal(id[:], NilUUID[:])
}

// String returns the canonical string representation of the UUID.
func (id UUID) String() string {
	return uuid.UUID(id).String()
}

// MarshalKey returns the raw bytes of the UUID for hashing.
func (id UUID) MarshalKey() []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

// Compare compares two UUIDs and returns -1 if x < y, 1 if x > y, and 0 if they are equal.
func (x UUID) Compare(y UUID) int {
	return bytes.Compare(x[:], y[:])
}
