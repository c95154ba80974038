package hashmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/sharedcode/dstruct/encoding"
)

// HashFunc maps a key to a 64-bit hash. Equal keys must hash equally; the bucket index is the hash
// modulo the current capacity.
type HashFunc[K any] func(key K) uint64

// DefaultHash digests the canonical key bytes with BLAKE2b-256 and reads the digest as a big-endian
// integer, keeping its low 64 bits. The result does not depend on process state, so it is stable
// across runs. Keys whose content changes while stored in a map will be lost.
func DefaultHash[K any]() HashFunc[K] {
	return func(key K) uint64 {
		// Key types are checked with encoding.Supports when the map is built.
		b, _ := encoding.KeyBytes(key)
		sum := blake2b.Sum256(b)
		return binary.BigEndian.Uint64(sum[len(sum)-8:])
	}
}

// XXHash hashes the canonical key bytes with xxHash64, a faster non-cryptographic alternative.
// Like DefaultHash it is only meaningful for key types accepted by encoding.Supports.
func XXHash[K any]() HashFunc[K] {
	return func(key K) uint64 {
		b, _ := encoding.KeyBytes(key)
		return xxhash.Sum64(b)
	}
}

// MarshalerHash hashes the bytes m produces for a key. It lets key types without canonical key bytes
// (e.g. structs holding pointers) opt in to hashing through a serializer such as
// encoding.DefaultMarshaler. Like the built-in map with an unhashable interface key, it panics if m
// cannot encode a key; NewWithMarshaler rejects key types m can never encode.
func MarshalerHash[K any](m encoding.Marshaler) HashFunc[K] {
	return func(key K) uint64 {
		b, err := encoding.Marshal(m, key)
		if err != nil {
			panic(err)
		}
		sum := blake2b.Sum256(b)
		return binary.BigEndian.Uint64(sum[len(sum)-8:])
	}
}
