package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Hash algorithm based on the 64 bit xxHash, it spreads keys that share long prefixes
// better than djb2.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it generates a 64 bit hash value
func (X *XXHashAlgorithm) HashFunc(key []byte) uint64 {
	return xxhash.Sum64(key)
}
