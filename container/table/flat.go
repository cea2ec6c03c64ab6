package table

import (
	"fmt"

	"github.com/cwbudde/algo-container/container/buffer"
	"github.com/cwbudde/algo-container/container/core"
)

const flatLabel = "flat"

// Flat is a table stored as one row-major block: cell (r, c) lives at
// offset r*Cols() + c.
type Flat[T core.Element] struct {
	rows, cols int
	buf        *buffer.Buffer[T]
	data       []T
}

var _ Table[int] = (*Flat[int])(nil)

// NewFlat allocates a rows x cols table of zero values in a single block.
// An empty shape allocates nothing.
func NewFlat[T core.Element](rows, cols int, opts ...Option) (*Flat[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts...)
	n := rows * cols
	buf, err := buffer.New[T](n, buffer.WithAllocator(cfg.Allocator), buffer.WithLabel(flatLabel))
	if err != nil {
		return nil, fmt.Errorf("table: allocate %d x %d block: %w", rows, cols, err)
	}
	// Capacity already covers n, so this only sets the count.
	if err := buf.Resize(n); err != nil {
		buf.Release()
		return nil, fmt.Errorf("table: allocate %d x %d block: %w", rows, cols, err)
	}
	return &Flat[T]{rows: rows, cols: cols, buf: buf, data: buf.Elements()}, nil
}

// Rows returns the number of rows.
func (t *Flat[T]) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Flat[T]) Cols() int { return t.cols }

// Offset returns the position of cell (r, c) in Data().
func (t *Flat[T]) Offset(r, c int) int {
	return r*t.cols + c
}

// At returns cell (r, c).
func (t *Flat[T]) At(r, c int) T {
	mustCell(t.rows, t.cols, r, c)
	return t.data[r*t.cols+c]
}

// Set overwrites cell (r, c).
func (t *Flat[T]) Set(r, c int, v T) {
	mustCell(t.rows, t.cols, r, c)
	t.data[r*t.cols+c] = v
}

// AtChecked is At with an error instead of a panic.
func (t *Flat[T]) AtChecked(r, c int) (T, error) {
	if err := checkCell(t.rows, t.cols, r, c); err != nil {
		var zero T
		return zero, err
	}
	return t.data[r*t.cols+c], nil
}

// SetChecked is Set with an error instead of a panic.
func (t *Flat[T]) SetChecked(r, c int, v T) error {
	if err := checkCell(t.rows, t.cols, r, c); err != nil {
		return err
	}
	t.data[r*t.cols+c] = v
	return nil
}

// Row returns row r as a slice of the underlying block.
func (t *Flat[T]) Row(r int) []T {
	mustRow(t.rows, r)
	lo, hi := r*t.cols, (r+1)*t.cols
	return t.data[lo:hi:hi]
}

// Data returns the whole block in row-major order.
func (t *Flat[T]) Data() []T {
	return t.data
}

// Release frees the block. Calling it again is a no-op.
func (t *Flat[T]) Release() {
	t.buf.Release()
	t.data = nil
	t.rows, t.cols = 0, 0
}
