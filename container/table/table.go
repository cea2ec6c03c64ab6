package table

import (
	"fmt"

	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/core"
)

// Table is a rows x cols grid of elements. At and Set panic outside
// 0 <= r < Rows(), 0 <= c < Cols(). Row returns a view of one row that
// aliases the table's storage.
type Table[T any] interface {
	Rows() int
	Cols() int
	At(r, c int) T
	Set(r, c int, v T)
	Row(r int) []T
	Release()
}

// Config defines how a table acquires storage.
type Config struct {
	Allocator alloc.Allocator
}

// Option mutates a Config.
type Option func(*Config)

// WithAllocator routes storage requests through a.
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *Config) {
		if a != nil {
			cfg.Allocator = a
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := Config{Allocator: alloc.Default}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func checkShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("table: %w: %d x %d", core.ErrShape, rows, cols)
	}
	if cols != 0 && rows > int(^uint(0)>>1)/cols {
		return fmt.Errorf("table: %w: %d x %d overflows", core.ErrShape, rows, cols)
	}
	return nil
}

func checkCell(rows, cols, r, c int) error {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return fmt.Errorf("%w: cell (%d, %d) not in %d x %d", core.ErrOutOfRange, r, c, rows, cols)
	}
	return nil
}

func mustCell(rows, cols, r, c int) {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf("table: cell (%d, %d) out of range %d x %d", r, c, rows, cols))
	}
}

func mustRow(rows, r int) {
	if r < 0 || r >= rows {
		panic(fmt.Sprintf("table: row %d out of range [0, %d)", r, rows))
	}
}

// Fill sets every cell of t to f(r, c).
func Fill[T any](t Table[T], f func(r, c int) T) {
	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			t.Set(r, c, f(r, c))
		}
	}
}

// Equal reports whether a and b have the same shape and cell values.
func Equal[T comparable](a, b Table[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.At(r, c) != b.At(r, c) {
				return false
			}
		}
	}
	return true
}

// Pattern returns the fill r*cols + c + 1, which numbers the cells of a
// table with cols columns from 1 in row-major order.
func Pattern(cols int) func(r, c int) int {
	return func(r, c int) int {
		return r*cols + c + 1
	}
}
