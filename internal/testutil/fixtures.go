package testutil

import "math"

// RowMajor returns the cells of a rows x cols table filled with
// r*cols + c + 1, in row-major order.
func RowMajor(rows, cols int) []int {
	out := make([]int, rows*cols)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Cosine returns n samples of a cosine that completes bin cycles over the
// frame, so its energy lands in a single FFT bin.
func Cosine(bin, n int, amplitude float64) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// DC generates a constant-valued frame.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
