// Package frames stores fixed-width float64 frames in one growable
// row-major block and runs vectorized kernels over individual frames.
//
// Frames grows a row at a time on top of buffer.Buffer, so appending a frame
// costs amortized O(width). It satisfies table.Table, with frames as rows
// and samples as columns.
package frames

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-container/container/buffer"
	"github.com/cwbudde/algo-container/container/core"
	"github.com/cwbudde/algo-container/container/table"
)

// Frames is a growing sequence of frames of equal width.
type Frames struct {
	width int
	buf   *buffer.Buffer[float64]

	plan     *algofft.Plan[complex128]
	planSize int
}

var _ table.Table[float64] = (*Frames)(nil)

// New returns an empty Frames for frames of the given width. Unless opts
// override it, the first growth allocates room for one frame.
func New(width int, opts ...buffer.Option) (*Frames, error) {
	if width <= 0 {
		return nil, fmt.Errorf("frames: %w: width %d", core.ErrShape, width)
	}
	defaults := []buffer.Option{buffer.WithLabel("frames"), buffer.WithMinCapacity(width)}
	buf, err := buffer.New[float64](0, append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Frames{width: width, buf: buf}, nil
}

// Push appends a copy of frame, which must be exactly Width() long.
func (f *Frames) Push(frame []float64) error {
	if len(frame) != f.width {
		return fmt.Errorf("frames: %w: frame of %d samples, want %d", core.ErrShape, len(frame), f.width)
	}
	n := f.buf.Len()
	if err := f.buf.Resize(n + f.width); err != nil {
		return fmt.Errorf("frames: push frame %d: %w", f.Rows(), err)
	}
	copy(f.buf.Elements()[n:], frame)
	return nil
}

// Width returns the number of samples per frame.
func (f *Frames) Width() int { return f.width }

// Rows returns the number of frames.
func (f *Frames) Rows() int { return f.buf.Len() / f.width }

// Cols returns the frame width.
func (f *Frames) Cols() int { return f.width }

// Capacity returns the number of frames that fit without reallocating.
func (f *Frames) Capacity() int { return f.buf.Cap() / f.width }

// At returns sample c of frame r.
func (f *Frames) At(r, c int) float64 {
	f.mustCell(r, c)
	return f.buf.At(r*f.width + c)
}

// Set overwrites sample c of frame r.
func (f *Frames) Set(r, c int, v float64) {
	f.mustCell(r, c)
	f.buf.Set(r*f.width+c, v)
}

// Row returns frame r. The slice aliases the storage and is invalidated by
// the next Push that reallocates.
func (f *Frames) Row(r int) []float64 {
	if r < 0 || r >= f.Rows() {
		panic(fmt.Sprintf("frames: frame %d out of range [0, %d)", r, f.Rows()))
	}
	lo, hi := r*f.width, (r+1)*f.width
	return f.buf.Elements()[lo:hi:hi]
}

// Data returns all frames back to back.
func (f *Frames) Data() []float64 {
	return f.buf.Elements()
}

// Reset drops all frames but keeps the storage.
func (f *Frames) Reset() {
	f.buf.Reset()
}

// Release frees the storage. Calling it again is a no-op.
func (f *Frames) Release() {
	f.buf.Release()
	f.plan = nil
	f.planSize = 0
}

// Scale multiplies frame r by gain.
func (f *Frames) Scale(r int, gain float64) {
	row := f.Row(r)
	vecmath.ScaleBlock(row, row, gain)
}

// Accumulate adds frame src into frame dst.
func (f *Frames) Accumulate(dst, src int) {
	vecmath.AddBlockInPlace(f.Row(dst), f.Row(src))
}

// Window multiplies frame r by coeffs, which must be Width() long.
func (f *Frames) Window(r int, coeffs []float64) error {
	if len(coeffs) != f.width {
		return fmt.Errorf("frames: %w: %d window coefficients, want %d", core.ErrShape, len(coeffs), f.width)
	}
	vecmath.MulBlockInPlace(f.Row(r), coeffs)
	return nil
}

// Spectrum returns the magnitude spectrum |X[k]| of frame r for the
// non-negative frequency bins. Frames whose width is not a power of two are
// zero padded to the next one, so the result has nextPow2(width)/2+1 bins.
func (f *Frames) Spectrum(r int) ([]float64, error) {
	row := f.Row(r)
	n := nextPow2(f.width)
	if err := f.ensurePlan(n); err != nil {
		return nil, err
	}

	in := make([]complex128, n)
	for i, v := range row {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := f.plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("frames: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func (f *Frames) ensurePlan(n int) error {
	if f.plan != nil && f.planSize == n {
		return nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("frames: failed to create FFT plan: %w", err)
	}
	f.plan, f.planSize = plan, n
	return nil
}

func (f *Frames) mustCell(r, c int) {
	if r < 0 || r >= f.Rows() || c < 0 || c >= f.width {
		panic(fmt.Sprintf("frames: cell (%d, %d) out of range %d x %d", r, c, f.Rows(), f.width))
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
