package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEqual(t *testing.T) {
	t.Run("two byte slices are equal in length and values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.True(t, isEqual, "slices equal in length and values")
	})

	t.Run("two byte slices are unequal in length", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in length")
	})

	t.Run("two byte slices are unequal in values", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		b := []byte{0, 1, 5, 3, 4, 5, 6, 7, 8, 9}

		// Execute
		isEqual := IsEqual(a, b)

		// Check
		assert.False(t, isEqual, "slices unequal in values")
	})

	t.Run("nil and empty slices are equal", func(t *testing.T) {
		// Execute
		isEqual := IsEqual(nil, []byte{})

		// Check
		assert.True(t, isEqual, "nil equals empty")
	})
}

func TestMulNoOverflow(t *testing.T) {
	t.Run("multiplies small values", func(t *testing.T) {
		// Execute
		p, ok := MulNoOverflow(8, 8)

		// Check
		assert.True(t, ok, "product fits")
		assert.Equal(t, int64(64), p, "correct product")
	})

	t.Run("reports overflow", func(t *testing.T) {
		// Execute
		_, ok := MulNoOverflow(math.MaxInt64/2, 3)

		// Check
		assert.False(t, ok, "product overflows")
	})

	t.Run("rejects non positive factors", func(t *testing.T) {
		// Execute
		_, ok1 := MulNoOverflow(0, 3)
		_, ok2 := MulNoOverflow(3, -1)

		// Check
		assert.False(t, ok1, "zero factor rejected")
		assert.False(t, ok2, "negative factor rejected")
	})
}
