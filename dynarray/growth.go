package dynarray

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

// MinCapacity is the smallest capacity a growing array allocates.
const MinCapacity = 8

// maxBytes bounds a single storage block. It matches the largest allocation
// the Go runtime accepts on 64-bit platforms.
const maxBytes = min(math.MaxInt, 1<<47)

// ErrCapacityOverflow is returned when a requested length or capacity, or
// the byte size of the storage it needs, cannot be represented.
var ErrCapacityOverflow = errors.New("dynarray: capacity overflow")

// nextCapacity returns the capacity to allocate when an array of capacity
// cur must hold need elements: max(need, 2*cur, MinCapacity).
func nextCapacity(cur, need int) (int, error) {
	if need <= cur {
		return cur, nil
	}
	if cur > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: cannot double capacity %d", ErrCapacityOverflow, cur)
	}
	return max(need, cur*2, MinCapacity), nil
}

// storageSize returns the number of bytes n elements of elemSize occupy.
func storageSize(elemSize uintptr, n int) (uintptr, error) {
	count, err := safecast.Conv[uintptr](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %d elements: %w", ErrCapacityOverflow, n, err)
	}
	if elemSize != 0 && count > maxBytes/elemSize {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, n, elemSize)
	}
	return elemSize * count, nil
}

// addLength returns length+add, failing instead of wrapping.
func addLength(length, add int) (int, error) {
	if add > math.MaxInt-length {
		return 0, fmt.Errorf("%w: length %d + %d", ErrCapacityOverflow, length, add)
	}
	return length + add, nil
}
