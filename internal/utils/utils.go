package utils

import "math"

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// MulNoOverflow - Returns a * b for two positive values and whether the product fits in an int.
// Slot addresses are indexed with int, so anything above math.MaxInt can never be allocated.
func MulNoOverflow(a, b int64) (product int64, ok bool) {
	if a <= 0 || b <= 0 {
		return
	}
	if a > math.MaxInt/b {
		return
	}

	product = a * b
	ok = true

	return
}
