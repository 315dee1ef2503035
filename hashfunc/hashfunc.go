package hashfunc

import "github.com/maxsei/fixedhashtable/internal/hash"

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom hash
// function suited for its particular distribution of keys.
// The home bucket of a key is HashFunc(key) % NumberOfBuckets, hence the function must be deterministic
// for the lifetime of a table.
type HashAlgorithm interface {
	// HashFunc - Given key it generates a 64 bit hash value
	HashFunc(key []byte) uint64
}

// NewDJB2 - Returns the default hash algorithm (djb2)
func NewDJB2() HashAlgorithm {
	return hash.NewDJB2HashAlgorithm()
}

// NewXXHash - Returns a hash algorithm based on 64 bit xxHash
func NewXXHash() HashAlgorithm {
	return hash.NewXXHashAlgorithm()
}
