package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/buffer"
	"github.com/cwbudde/algo-container/container/frames"
	"github.com/cwbudde/algo-container/container/own"
	"github.com/cwbudde/algo-container/container/table"
	"github.com/cwbudde/algo-container/internal/render"
)

type demo struct {
	out    io.Writer
	cfg    configuration
	logger *slog.Logger
	alloc  alloc.Allocator
}

func (d *demo) runSection(name string) error {
	switch name {
	case "heap":
		return d.heap()
	case "dynamic":
		return d.dynamic()
	case "tables":
		return d.tables()
	case "frames":
		return d.frames()
	default:
		return fmt.Errorf("unknown section %q", name)
	}
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func joinValues[T any](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func (d *demo) heap() error {
	d.printf("=== Heap Blocks and Ownership ===\n")

	render.Section(d.out, "1. Heap Arrays")
	arr, err := buffer.New[int](5, buffer.WithAllocator(d.alloc), buffer.WithLabel("heapArray"))
	if err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		if err := arr.Append((i + 1) * 10); err != nil {
			arr.Release()
			return err
		}
	}
	d.printf("Heap array: %s\n", joinValues(arr.Elements()))

	render.Section(d.out, "2. Releasing Arrays")
	arr.Release()
	arr.Release()
	d.printf("Array memory released; releasing again is a no-op (count=%d, capacity=%d)\n", arr.Len(), arr.Cap())

	render.Section(d.out, "3. Exclusive Ownership")
	value := own.NewExclusive(99, nil)
	v, err := value.Get()
	if err != nil {
		return err
	}
	d.printf("Exclusive value: %d\n", v)
	moved := value.Move()
	mv, err := moved.Get()
	if err != nil {
		return err
	}
	_, srcErr := value.Get()
	d.printf("After move: target=%d, source: %v\n", mv, srcErr)
	moved.Release()

	block, err := alloc.Make[int](d.alloc, "exclusiveArray", 3)
	if err != nil {
		return err
	}
	a := d.alloc
	exclusiveArr := own.NewExclusive(block, func(s []int) { alloc.Free(a, "exclusiveArray", s) })
	block[0], block[1], block[2] = 100, 200, 300
	data, err := exclusiveArr.Get()
	if err != nil {
		exclusiveArr.Release()
		return err
	}
	d.printf("Exclusive array: %s\n", joinValues(data))
	exclusiveArr.Release()
	d.printf("Exclusive handles release their values exactly once.\n")

	render.Section(d.out, "4. Shared Ownership")
	released := false
	sharedA := own.NewShared(77, func(int) { released = true })
	sharedB, err := sharedA.Copy()
	if err != nil {
		return err
	}
	va, err := sharedA.Get()
	if err != nil {
		return err
	}
	vb, err := sharedB.Get()
	if err != nil {
		return err
	}
	d.printf("sharedA value: %d\n", va)
	d.printf("sharedB value: %d\n", vb)
	d.printf("Reference count: %d\n", sharedA.RefCount())
	if err := sharedA.Release(); err != nil {
		return err
	}
	d.printf("After releasing sharedA: count=%d, value released=%t\n", sharedB.RefCount(), released)
	if err := sharedB.Release(); err != nil {
		return err
	}
	d.printf("After releasing sharedB: value released=%t\n", released)
	return nil
}

func (d *demo) dynamic() error {
	d.printf("\n=== Dynamic Arrays (Resize + Copy) ===\n")

	render.Section(d.out, "1. Initial Dynamic Array")
	arr, err := buffer.New[int](d.cfg.Capacity, buffer.WithAllocator(d.alloc), buffer.WithLabel("dynamicArray"))
	if err != nil {
		return err
	}
	defer arr.Release()
	render.Buffer[int](d.out, "Empty array created", arr)

	render.Section(d.out, "2. Adding Elements")
	if err := d.appendAll(arr, 10, 20, 30); err != nil {
		return err
	}
	render.Buffer[int](d.out, "After adding 10, 20, 30:", arr)
	if err := d.appendAll(arr, 40); err != nil {
		return err
	}
	label := "After adding 40:"
	if arr.Len() == arr.Cap() {
		label = "After adding 40 (full!):"
	}
	render.Buffer[int](d.out, label, arr)

	render.Section(d.out, "3. Growing the Array")
	if arr.Len() == arr.Cap() {
		d.printf("Array is full (count == capacity). The next append grows it.\n")
	}
	before := arr.Stats()
	oldCap := arr.Cap()
	if err := d.appendAll(arr, 50); err != nil {
		return err
	}
	after := arr.Stats()
	if after.Grows > before.Grows {
		d.printf("Grew capacity %d -> %d, copied %d elements\n", oldCap, arr.Cap(), after.Copies-before.Copies)
	}
	render.Buffer[int](d.out, "After adding 50:", arr)

	render.Section(d.out, "4. Adding After Growth")
	if err := d.appendAll(arr, 60, 70); err != nil {
		return err
	}
	render.Buffer[int](d.out, "After adding 60, 70:", arr)

	render.Section(d.out, "5. Cleanup")
	s := arr.Stats()
	arr.Release()
	d.printf("Dynamic array released after %d grows and %d element copies\n", s.Grows, s.Copies)
	return nil
}

func (d *demo) appendAll(b *buffer.Buffer[int], vs ...int) error {
	for _, v := range vs {
		oldCap := b.Cap()
		if err := b.Append(v); err != nil {
			return err
		}
		if b.Cap() != oldCap {
			d.logger.Debug("buffer grew", "from", oldCap, "to", b.Cap(), "count", b.Len())
		}
	}
	return nil
}

func (d *demo) tables() error {
	rows, cols := d.cfg.Rows, d.cfg.Cols
	d.printf("\n=== Two Dimensional Arrays ===\n")

	render.Section(d.out, "1. Row-Indirect 2D Array")
	ri, err := table.NewRowIndirect[int](rows, cols, table.WithAllocator(d.alloc))
	if err != nil {
		return err
	}
	table.Fill[int](ri, table.Pattern(cols))
	render.Table[int](d.out, "Dynamic 2D array", ri)
	d.printf("Allocations: 1 spine + %d rows\n", rows)

	render.Section(d.out, "2. Flat Array as 2D")
	ft, err := table.NewFlat[int](rows, cols, table.WithAllocator(d.alloc))
	if err != nil {
		ri.Release()
		return err
	}
	table.Fill[int](ft, table.Pattern(cols))
	render.Table[int](d.out, "Flat array as 2D", ft)
	d.printf("Layouts hold the same values: %t\n", table.Equal[int](ri, ft))

	render.Section(d.out, "3. Releasing the Tables")
	ri.Release()
	d.printf("2D array released (rows first, then spine)\n")
	ft.Release()
	d.printf("Flat array released (one block)\n")
	return nil
}

func (d *demo) frames() error {
	width := d.cfg.FrameWidth
	d.printf("\n=== Growable Frames ===\n")

	f, err := frames.New(width, buffer.WithAllocator(d.alloc))
	if err != nil {
		return err
	}
	defer f.Release()

	frame := make([]float64, width)
	for i := range frame {
		frame[i] = 1
	}
	for i := 0; i < 3; i++ {
		if err := f.Push(frame); err != nil {
			return err
		}
		f.Scale(i, float64(i+1))
	}
	d.printf("Pushed %d frames of %d samples, room for %d\n", f.Rows(), f.Width(), f.Capacity())

	mag, err := f.Spectrum(f.Rows() - 1)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tMagnitude\n")
	fmt.Fprintf(tw, "---\t---------\n")
	for k, m := range mag {
		fmt.Fprintf(tw, "%d\t%.4f\n", k, m)
	}
	return tw.Flush()
}
