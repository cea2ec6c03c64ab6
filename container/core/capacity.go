package core

import "math"

// DefaultMinCapacity is the capacity a zero-capacity buffer grows to.
const DefaultMinCapacity = 1

// NextCapacity returns the capacity after one growth step: the current
// capacity doubled, but never below minCapacity. Values of minCapacity
// below 1 are treated as 1 so that an empty buffer can always grow.
// Doubling saturates at math.MaxInt.
func NextCapacity(capacity, minCapacity int) int {
	if minCapacity < DefaultMinCapacity {
		minCapacity = DefaultMinCapacity
	}
	if capacity < 0 {
		capacity = 0
	}
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return max(minCapacity, capacity*2)
}

// CapacityFor returns the first capacity in the growth sequence starting at
// capacity that is at least n. It returns capacity unchanged when it
// already covers n.
func CapacityFor(capacity, n, minCapacity int) int {
	for capacity < n {
		next := NextCapacity(capacity, minCapacity)
		if next <= capacity {
			return n
		}
		capacity = next
	}
	return capacity
}

// Zero sets all values in buf to the zero value.
func Zero[T any](buf []T) {
	var zero T
	for i := range buf {
		buf[i] = zero
	}
}

// CopyInto copies src into dst element by element and returns the number
// of copied elements.
func CopyInto[T any](dst, src []T) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}
