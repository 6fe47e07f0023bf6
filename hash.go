package probehash

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to an unsigned index-sized integer. The table reduces it modulo its
// capacity. It must return the same value for equal keys for as long as the key is stored.
type Hasher[K any] func(key K) uint64

// Equal reports whether two keys are the same key
type Equal[K any] func(a, b K) bool

// StringHash hashes strings with xxHash64
func StringHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// BytesHash hashes byte slices with xxHash64
func BytesHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// IntHash is the identity hash for integer keys. Consecutive keys land in consecutive
// home slots, which makes probe sequences easy to predict.
func IntHash[K constraints.Integer](key K) uint64 {
	return uint64(key)
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1a computes a 32-bit FNV-1a hash of the key. Being independent of xxHash, it is a
// reasonable secondary hash for double hashing byte slice keys.
func FNV1a(key []byte) uint64 {
	hash := uint32(offset32)
	for _, b := range key {
		hash ^= uint32(b)
		hash *= prime32
	}
	return uint64(hash)
}

// FNV1aString is FNV1a for string keys
func FNV1aString(key string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return uint64(hash)
}

// Equals is the equality predicate for comparable keys
func Equals[K comparable](a, b K) bool {
	return a == b
}

// BytesEqual is the equality predicate for byte slice keys
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
