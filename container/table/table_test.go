package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/core"
	"github.com/cwbudde/algo-container/internal/testutil"
)

type layout struct {
	name string
	make func(rows, cols int, opts ...Option) (Table[int], error)
}

var layouts = []layout{
	{"RowIndirect", func(rows, cols int, opts ...Option) (Table[int], error) {
		return NewRowIndirect[int](rows, cols, opts...)
	}},
	{"Flat", func(rows, cols int, opts ...Option) (Table[int], error) {
		return NewFlat[int](rows, cols, opts...)
	}},
}

func TestLayoutsFillAndRead(t *testing.T) {
	for _, l := range layouts {
		t.Run(l.name, func(t *testing.T) {
			tab, err := l.make(3, 4)
			require.NoError(t, err)
			defer tab.Release()

			Fill[int](tab, Pattern(4))
			require.Equal(t, 3, tab.Rows())
			require.Equal(t, 4, tab.Cols())

			want := [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
			for r := range want {
				if diff := cmp.Diff(want[r], tab.Row(r)); diff != "" {
					t.Fatalf("row %d (-want +got):\n%s", r, diff)
				}
			}

			tab.Set(1, 2, 70)
			require.Equal(t, 70, tab.At(1, 2))
			require.Equal(t, 70, tab.Row(1)[2])
		})
	}
}

func TestLayoutsEquivalent(t *testing.T) {
	shapes := [][2]int{{1, 1}, {3, 4}, {4, 3}, {7, 1}, {1, 9}, {16, 16}}
	for _, s := range shapes {
		rows, cols := s[0], s[1]
		ri, err := NewRowIndirect[int](rows, cols)
		require.NoError(t, err)
		ft, err := NewFlat[int](rows, cols)
		require.NoError(t, err)

		Fill[int](ri, Pattern(cols))
		Fill[int](ft, Pattern(cols))

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if ri.At(r, c) != ft.At(r, c) {
					t.Fatalf("%dx%d: cell (%d, %d) differs: %d vs %d", rows, cols, r, c, ri.At(r, c), ft.At(r, c))
				}
			}
		}
		require.True(t, Equal[int](ri, ft))

		ri.Release()
		ft.Release()
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	a, err := NewFlat[int](2, 2)
	require.NoError(t, err)
	b, err := NewRowIndirect[int](2, 2)
	require.NoError(t, err)
	c, err := NewFlat[int](2, 3)
	require.NoError(t, err)

	require.True(t, Equal[int](a, b))
	b.Set(1, 1, 5)
	require.False(t, Equal[int](a, b))
	require.False(t, Equal[int](a, c))
}

func TestFlatRowTwo(t *testing.T) {
	ft, err := NewFlat[int](3, 4)
	require.NoError(t, err)
	Fill[int](ft, Pattern(4))

	require.Equal(t, []int{9, 10, 11, 12}, ft.Row(2))
	require.Equal(t, 9, ft.Offset(2, 1))
	require.Equal(t, testutil.RowMajor(3, 4), ft.Data())
}

func TestFlatRowIsCapped(t *testing.T) {
	ft, err := NewFlat[int](2, 2)
	require.NoError(t, err)
	row := ft.Row(0)
	require.Equal(t, 2, cap(row))
	row = append(row, 99)
	require.Equal(t, 0, ft.At(1, 0), "appending to a row view must not overwrite the next row")
	_ = row
}

func TestFlatSingleAllocation(t *testing.T) {
	rec := alloc.NewRecorder(alloc.NewHeap())
	ft, err := NewFlat[int](3, 4, WithAllocator(rec))
	require.NoError(t, err)
	require.Equal(t, []string{"flat"}, rec.Labels(alloc.OpAcquire))

	ft.Release()
	ft.Release()
	require.Equal(t, []string{"flat"}, rec.Labels(alloc.OpRelease))
	require.True(t, rec.Balanced())
}

func TestRowIndirectAllocationCount(t *testing.T) {
	rec := alloc.NewRecorder(alloc.NewHeap())
	ri, err := NewRowIndirect[int](3, 4, WithAllocator(rec))
	require.NoError(t, err)
	require.Equal(t, []string{"spine", "row[0]", "row[1]", "row[2]"}, rec.Labels(alloc.OpAcquire))
	ri.Release()
}

func TestRowIndirectReleaseOrder(t *testing.T) {
	rec := alloc.NewRecorder(alloc.NewHeap())
	ri, err := NewRowIndirect[int](3, 4, WithAllocator(rec))
	require.NoError(t, err)

	ri.Release()
	released := rec.Labels(alloc.OpRelease)
	require.Equal(t, []string{"row[2]", "row[1]", "row[0]", "spine"}, released)
	require.Equal(t, "spine", released[len(released)-1], "spine must be released after every row")
	require.True(t, rec.Balanced())

	ri.Release()
	require.Len(t, rec.Labels(alloc.OpRelease), 4, "second Release must be a no-op")
	require.Zero(t, ri.Rows())
}

func TestRowIndirectPartialFailure(t *testing.T) {
	for k := 0; k < 4; k++ {
		heap := alloc.NewHeap()
		rec := alloc.NewRecorder(&alloc.Limit{Next: heap, FailLabel: rowLabel(k)})

		_, err := NewRowIndirect[int](4, 5, WithAllocator(rec))
		require.ErrorIs(t, err, core.ErrAllocation)
		require.Contains(t, err.Error(), rowLabel(k))

		acquired, released := rec.Counts()
		require.Equal(t, k+1, acquired, "spine plus rows [0, k)")
		require.Equal(t, acquired, released, "k=%d: allocation balance", k)
		require.Zero(t, heap.Live())

		rel := rec.Labels(alloc.OpRelease)
		require.Equal(t, "spine", rel[len(rel)-1])
	}
}

func TestRowIndirectSpineFailure(t *testing.T) {
	rec := alloc.NewRecorder(&alloc.Limit{FailLabel: "spine"})
	_, err := NewRowIndirect[int](2, 2, WithAllocator(rec))
	require.ErrorIs(t, err, core.ErrAllocation)
	require.Empty(t, rec.Events())
}

func TestFlatAllocationFailure(t *testing.T) {
	_, err := NewFlat[float64](4, 4, WithAllocator(&alloc.Limit{MaxBytes: 64}))
	require.True(t, errors.Is(err, core.ErrAllocation))
}

func TestZeroShapes(t *testing.T) {
	rec := alloc.NewRecorder(alloc.NewHeap())

	ri, err := NewRowIndirect[int](0, 4, WithAllocator(rec))
	require.NoError(t, err)
	ft, err := NewFlat[int](0, 4, WithAllocator(rec))
	require.NoError(t, err)
	ft2, err := NewFlat[int](4, 0, WithAllocator(rec))
	require.NoError(t, err)
	require.Empty(t, rec.Events())
	ri.Release()
	ft.Release()
	ft2.Release()
	require.Empty(t, rec.Events())

	noCols, err := NewRowIndirect[int](3, 0, WithAllocator(rec))
	require.NoError(t, err)
	require.Equal(t, []string{"spine"}, rec.Labels(alloc.OpAcquire))
	require.Empty(t, noCols.Row(1))
	noCols.Release()
	require.True(t, rec.Balanced())
}

func TestNegativeShape(t *testing.T) {
	for _, l := range layouts {
		_, err := l.make(-1, 3)
		require.ErrorIs(t, err, core.ErrShape, l.name)
		_, err = l.make(3, -1)
		require.ErrorIs(t, err, core.ErrShape, l.name)
	}
}

func TestCheckedAccess(t *testing.T) {
	ri, err := NewRowIndirect[int](2, 3)
	require.NoError(t, err)
	ft, err := NewFlat[int](2, 3)
	require.NoError(t, err)

	type checked interface {
		AtChecked(r, c int) (int, error)
		SetChecked(r, c, v int) error
	}
	for _, tab := range []checked{ri, ft} {
		require.NoError(t, tab.SetChecked(1, 2, 8))
		v, err := tab.AtChecked(1, 2)
		require.NoError(t, err)
		require.Equal(t, 8, v)

		_, err = tab.AtChecked(2, 0)
		require.ErrorIs(t, err, core.ErrOutOfRange)
		require.ErrorIs(t, tab.SetChecked(0, 3, 1), core.ErrOutOfRange)
		require.ErrorIs(t, tab.SetChecked(-1, 0, 1), core.ErrOutOfRange)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	for _, l := range layouts {
		tab, err := l.make(2, 2)
		require.NoError(t, err, l.name)
		for _, cell := range [][2]int{{2, 0}, {0, 2}, {-1, 0}, {0, -1}} {
			func() {
				defer func() {
					r := recover()
					require.NotNil(t, r, "%s: At%v did not panic", l.name, cell)
					require.True(t, strings.HasPrefix(r.(string), "table:"))
				}()
				_ = tab.At(cell[0], cell[1])
			}()
		}
		require.Panics(t, func() { tab.Row(2) })
	}
}

func TestAccessAfterReleasePanics(t *testing.T) {
	for _, l := range layouts {
		tab, err := l.make(2, 2)
		require.NoError(t, err, l.name)
		tab.Release()
		require.Panics(t, func() { tab.At(0, 0) }, l.name)
	}
}

func BenchmarkRowIndirectAt(b *testing.B) {
	ri, err := NewRowIndirect[float64](64, 64)
	require.NoError(b, err)
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		for r := 0; r < 64; r++ {
			for c := 0; c < 64; c++ {
				sum += ri.At(r, c)
			}
		}
	}
	_ = sum
}

func BenchmarkFlatAt(b *testing.B) {
	ft, err := NewFlat[float64](64, 64)
	require.NoError(b, err)
	b.ResetTimer()
	var sum float64
	for i := 0; i < b.N; i++ {
		for r := 0; r < 64; r++ {
			for c := 0; c < 64; c++ {
				sum += ft.At(r, c)
			}
		}
	}
	_ = sum
}
