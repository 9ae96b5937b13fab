package chash

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to an unsigned hash. The table reduces it modulo the
// bucket count to pick a chain. A HashFunc must be deterministic for equal
// key contents.
type HashFunc func(key View) uint64

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// FNV1a computes the 64-bit FNV-1a hash of the key.
func FNV1a(key View) uint64 {
	hash := uint64(offset64)
	for _, b := range key.b {
		hash ^= uint64(b)
		hash *= prime64
	}
	return hash
}

// XXHash computes the 64-bit xxHash of the key.
func XXHash(key View) uint64 {
	return xxhash.Sum64(key.b)
}
