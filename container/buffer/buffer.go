package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/core"
	"github.com/cwbudde/algo-container/container/own"
)

// Stats counts the work done by growth.
type Stats struct {
	Grows  int // reallocations
	Copies int // elements copied into new blocks
}

// Buffer is a growable contiguous block of elements.
// Indices [0, Len()) hold written values; [Len(), Cap()) are allocated spare slots.
type Buffer[T core.Element] struct {
	cfg      Config
	storage  own.Exclusive[[]T]
	data     []T
	count    int
	stats    Stats
	released bool
}

// New returns an empty Buffer with room for initialCapacity elements.
// Negative capacities are treated as 0; a capacity of 0 allocates nothing.
func New[T core.Element](initialCapacity int, opts ...Option) (*Buffer[T], error) {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	b := &Buffer[T]{cfg: ApplyOptions(opts...)}
	if initialCapacity == 0 {
		return b, nil
	}
	block, err := b.allocate(initialCapacity)
	if err != nil {
		return nil, fmt.Errorf("buffer: create with capacity %d: %w", initialCapacity, err)
	}
	b.adopt(block)
	return b, nil
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Elements returns the stored elements. The slice aliases the buffer and
// is invalidated by the next growth or by Release.
func (b *Buffer[T]) Elements() []T {
	return b.data[:b.count]
}

// Stats returns the growth counters accumulated since creation.
func (b *Buffer[T]) Stats() Stats {
	return b.stats
}

// Released reports whether Release has been called.
func (b *Buffer[T]) Released() bool {
	return b.released
}

// Append stores v after the last element, doubling the capacity first when
// the buffer is full. If growth fails the buffer is left unchanged.
func (b *Buffer[T]) Append(v T) error {
	if b.released {
		return fmt.Errorf("buffer: append: %w", core.ErrReleased)
	}
	if b.count == len(b.data) {
		if err := b.reallocate(core.NextCapacity(len(b.data), b.cfg.MinCapacity)); err != nil {
			return err
		}
	}
	b.data[b.count] = v
	b.count++
	return nil
}

// AppendSlice appends each value in order and stops at the first error.
func (b *Buffer[T]) AppendSlice(vs ...T) error {
	for _, v := range vs {
		if err := b.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// At returns the element at index i. It panics unless 0 <= i < Len().
func (b *Buffer[T]) At(i int) T {
	b.mustIndex(i)
	return b.data[i]
}

// Set overwrites the element at index i. It panics unless 0 <= i < Len().
func (b *Buffer[T]) Set(i int, v T) {
	b.mustIndex(i)
	b.data[i] = v
}

// AtChecked is At with an error instead of a panic.
func (b *Buffer[T]) AtChecked(i int) (T, error) {
	if err := b.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return b.data[i], nil
}

// SetChecked is Set with an error instead of a panic.
func (b *Buffer[T]) SetChecked(i int, v T) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.data[i] = v
	return nil
}

// Reserve ensures capacity for at least n elements with a single
// reallocation of exactly n slots. It is a no-op when Cap() >= n.
func (b *Buffer[T]) Reserve(n int) error {
	if b.released {
		return fmt.Errorf("buffer: reserve: %w", core.ErrReleased)
	}
	if n <= len(b.data) {
		return nil
	}
	return b.reallocate(n)
}

// Resize sets the element count to n, clamping negative values to 0.
// Elements exposed by a larger count are zeroed. When n exceeds the
// capacity, the capacity follows the doubling sequence until it covers n
// and the buffer is reallocated once.
func (b *Buffer[T]) Resize(n int) error {
	if b.released {
		return fmt.Errorf("buffer: resize: %w", core.ErrReleased)
	}
	if n < 0 {
		n = 0
	}
	if n > len(b.data) {
		if err := b.reallocate(core.CapacityFor(len(b.data), n, b.cfg.MinCapacity)); err != nil {
			return err
		}
	}
	// Spare slots may hold values from before a Reset or a smaller Resize.
	if n > b.count {
		core.Zero(b.data[b.count:n])
	}
	b.count = n
	return nil
}

// Reset drops all elements but keeps the storage.
func (b *Buffer[T]) Reset() {
	b.count = 0
}

// Copy returns a deep copy with the same capacity and configuration.
func (b *Buffer[T]) Copy() (*Buffer[T], error) {
	if b.released {
		return nil, fmt.Errorf("buffer: copy: %w", core.ErrReleased)
	}
	c := &Buffer[T]{cfg: b.cfg}
	if len(b.data) == 0 {
		return c, nil
	}
	block, err := c.allocate(len(b.data))
	if err != nil {
		return nil, fmt.Errorf("buffer: copy: %w", err)
	}
	c.adopt(block)
	c.count = core.CopyInto(c.data, b.data[:b.count])
	return c, nil
}

// Release frees the storage and sets capacity and count to 0.
// Calling it again is a no-op.
func (b *Buffer[T]) Release() {
	b.storage.Release()
	b.data = nil
	b.count = 0
	b.released = true
}

// reallocate moves the live elements into a new block of newCap slots.
// The new block is acquired before the old one is released.
func (b *Buffer[T]) reallocate(newCap int) error {
	block, err := b.allocate(newCap)
	if err != nil {
		return fmt.Errorf("buffer: grow %d -> %d: %w", len(b.data), newCap, err)
	}
	data, _ := block.Get()
	b.stats.Copies += core.CopyInto(data, b.data[:b.count])
	b.stats.Grows++
	b.adopt(block)
	return nil
}

func (b *Buffer[T]) allocate(n int) (*own.Exclusive[[]T], error) {
	a, label := b.cfg.Allocator, b.cfg.Label
	data, err := alloc.Make[T](a, label, n)
	if err != nil {
		return nil, err
	}
	return own.NewExclusive(data, func(s []T) { alloc.Free(a, label, s) }), nil
}

// adopt releases the current block and takes ownership of block.
func (b *Buffer[T]) adopt(block *own.Exclusive[[]T]) {
	b.storage.MoveFrom(block)
	b.data, _ = b.storage.Get()
}

func (b *Buffer[T]) mustIndex(i int) {
	if i < 0 || i >= b.count {
		panic(fmt.Sprintf("buffer: index %d out of range [0, %d)", i, b.count))
	}
}

func (b *Buffer[T]) checkIndex(i int) error {
	if i < 0 || i >= b.count {
		return fmt.Errorf("%w: index %d not in [0, %d)", core.ErrOutOfRange, i, b.count)
	}
	return nil
}
