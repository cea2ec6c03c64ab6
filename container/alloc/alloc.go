package alloc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-container/container/core"
)

// Block describes one contiguous storage request.
type Block struct {
	Label string
	Count int
	Size  int
}

// Bytes returns the total size of the block.
func (b Block) Bytes() int {
	return b.Count * b.Size
}

func (b Block) String() string {
	return fmt.Sprintf("%s[%d x %dB]", b.Label, b.Count, b.Size)
}

// Allocator approves storage requests and is told when storage is dropped.
// Release is only called for blocks whose Acquire succeeded.
type Allocator interface {
	Acquire(b Block) error
	Release(b Block)
}

// MaxBlockBytes is the largest block Make will request. Larger requests
// fail with core.ErrAllocation instead of reaching the runtime.
const MaxBlockBytes = min(math.MaxInt, 1<<48)

// Default is used when a container is given no allocator.
var Default Allocator = NewHeap()

// Make acquires a block of n elements from a and returns a zeroed slice of
// that length. A count of zero acquires nothing and returns nil.
func Make[T any](a Allocator, label string, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if a == nil {
		a = Default
	}
	size := core.SizeOf[T]()
	if size > 0 && n > MaxBlockBytes/size {
		return nil, fmt.Errorf("alloc: %s[%d x %dB] exceeds %d bytes: %w", label, n, size, MaxBlockBytes, core.ErrAllocation)
	}
	if err := a.Acquire(Block{Label: label, Count: n, Size: size}); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Free releases the block backing s. s must come from Make with the same
// allocator and label. Empty slices are ignored.
func Free[T any](a Allocator, label string, s []T) {
	if cap(s) == 0 {
		return
	}
	if a == nil {
		a = Default
	}
	a.Release(Block{Label: label, Count: cap(s), Size: core.SizeOf[T]()})
}
