// Package safe provides numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts an integer to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int64 converts a uint64 to int64 for storage in signed BIGINT columns.
func Int64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Uint64 converts a signed BIGINT value read from storage back to uint64.
func Uint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
