package hash

// djb2Seed - Initial accumulator value of the djb2 hash
const djb2Seed uint64 = 5381

// DJB2 - Returns the djb2 hash of data, acc = acc*33 + b for every byte b in order, starting from 5381.
// The accumulator wraps modulo 2^64.
func DJB2(data []byte) uint64 {
	acc := djb2Seed
	for _, b := range data {
		acc = (acc << 5) + acc + uint64(b)
	}

	return acc
}

// DJB2HashAlgorithm - The internally used hash algorithm, bucket selection is then done by the table
// as hash % numberOfBuckets.
type DJB2HashAlgorithm struct{}

// NewDJB2HashAlgorithm - Returns a pointer to a new DJB2HashAlgorithm instance
func NewDJB2HashAlgorithm() *DJB2HashAlgorithm {
	return &DJB2HashAlgorithm{}
}

// HashFunc - Given key it generates a 64 bit hash value
func (D *DJB2HashAlgorithm) HashFunc(key []byte) uint64 {
	return DJB2(key)
}
