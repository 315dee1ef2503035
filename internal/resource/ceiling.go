package resource

import (
	"errors"
	"fmt"
	"math"
	"runtime/debug"
)

// ErrExceedsMemoryCeiling is returned when a single reservation is bigger than the process could ever hold.
var ErrExceedsMemoryCeiling = errors.New("exceeds memory ceiling")

// addressSpace is the user address space of common 64-bit platforms, used when physical memory is unknown.
const addressSpace = int64(1) << 47

// MemoryCeiling returns the most bytes one allocation can be expected to get: the physical memory of the
// host, lowered to the runtime memory limit when one is set (GOMEMLIMIT or debug.SetMemoryLimit).
func MemoryCeiling() int64 {
	ceiling := physicalMemory()

	// A negative input only reads the current limit.
	if limit := debug.SetMemoryLimit(-1); limit > 0 && limit < math.MaxInt64 && limit < ceiling {
		ceiling = limit
	}

	return ceiling
}

// CheckCeiling returns an error wrapping ErrExceedsMemoryCeiling if bytes is above MemoryCeiling.
// The runtime aborts the process on an allocation it can not map, so this has to be checked up front.
func CheckCeiling(bytes int64) error {
	ceiling := MemoryCeiling()
	if bytes > ceiling {
		return fmt.Errorf("%d bytes %w of %d bytes", bytes, ErrExceedsMemoryCeiling, ceiling)
	}
	return nil
}

func clampToInt64(v uint64) int64 {
	if v == 0 || v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
