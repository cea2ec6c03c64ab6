package table

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/core"
	"github.com/cwbudde/algo-container/container/own"
)

const spineLabel = "spine"

func rowLabel(r int) string {
	return "row[" + strconv.Itoa(r) + "]"
}

// RowIndirect is a table stored as a spine of row handles, each owning its
// own block of Cols() elements.
//
// The spine is acquired first and the rows after it, in order. Release runs
// in the opposite direction: rows last-to-first, then the spine.
type RowIndirect[T core.Element] struct {
	rows, cols int
	alloc      alloc.Allocator
	spine      own.Exclusive[[]*own.Exclusive[[]T]]
	ribs       []*own.Exclusive[[]T]
	released   bool
}

var _ Table[int] = (*RowIndirect[int])(nil)

// NewRowIndirect allocates a rows x cols table of zero values.
// If any row cannot be allocated, the rows allocated before it and the
// spine are released before the error is returned. A table with no rows
// allocates nothing; a table with no columns allocates only the spine.
func NewRowIndirect[T core.Element](rows, cols int, opts ...Option) (*RowIndirect[T], error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts...)
	a := cfg.Allocator
	t := &RowIndirect[T]{rows: rows, cols: cols, alloc: a}
	if rows == 0 {
		return t, nil
	}

	ribs, err := alloc.Make[*own.Exclusive[[]T]](a, spineLabel, rows)
	if err != nil {
		return nil, fmt.Errorf("table: allocate spine of %d rows: %w", rows, err)
	}
	t.spine.MoveFrom(own.NewExclusive(ribs, func(s []*own.Exclusive[[]T]) {
		alloc.Free(a, spineLabel, s)
	}))
	t.ribs = ribs

	for r := range ribs {
		label := rowLabel(r)
		data, err := alloc.Make[T](a, label, cols)
		if err != nil {
			t.Release()
			return nil, fmt.Errorf("table: allocate row %d of %d: %w", r, rows, err)
		}
		ribs[r] = own.NewExclusive(data, func(s []T) { alloc.Free(a, label, s) })
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *RowIndirect[T]) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *RowIndirect[T]) Cols() int { return t.cols }

// At returns cell (r, c).
func (t *RowIndirect[T]) At(r, c int) T {
	mustCell(t.rows, t.cols, r, c)
	return t.row(r)[c]
}

// Set overwrites cell (r, c).
func (t *RowIndirect[T]) Set(r, c int, v T) {
	mustCell(t.rows, t.cols, r, c)
	t.row(r)[c] = v
}

// AtChecked is At with an error instead of a panic.
func (t *RowIndirect[T]) AtChecked(r, c int) (T, error) {
	if err := checkCell(t.rows, t.cols, r, c); err != nil {
		var zero T
		return zero, err
	}
	return t.row(r)[c], nil
}

// SetChecked is Set with an error instead of a panic.
func (t *RowIndirect[T]) SetChecked(r, c int, v T) error {
	if err := checkCell(t.rows, t.cols, r, c); err != nil {
		return err
	}
	t.row(r)[c] = v
	return nil
}

// Row returns row r.
func (t *RowIndirect[T]) Row(r int) []T {
	mustRow(t.rows, r)
	return t.row(r)
}

// Release frees every row, last to first, and then the spine.
// Calling it again is a no-op.
func (t *RowIndirect[T]) Release() {
	if t.released {
		return
	}
	for r := len(t.ribs) - 1; r >= 0; r-- {
		if t.ribs[r] != nil {
			t.ribs[r].Release()
			t.ribs[r] = nil
		}
	}
	t.ribs = nil
	t.spine.Release()
	t.rows, t.cols = 0, 0
	t.released = true
}

func (t *RowIndirect[T]) row(r int) []T {
	data, err := t.ribs[r].Get()
	if err != nil {
		panic(fmt.Sprintf("table: row %d: %v", r, err))
	}
	return data
}
