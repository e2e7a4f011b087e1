package magnitude

import (
	algovecmath "github.com/cwbudde/algo-vecmath"
)

// FromParts computes dst[i] = sqrt(re[i]^2 + im[i]^2).
//
// This is the zero-allocation path for callers that hold real and imaginary
// parts in separate slices. All three slices must have the same length.
// Panics if lengths differ.
func FromParts(dst, re, im []float64) {
	if len(dst) != len(re) || len(re) != len(im) {
		panic("magnitude: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	algovecmath.Magnitude(dst, re, im)
}

// Complex returns |x[i]| for each complex sample. Returns nil for empty input.
func Complex(x []complex128) []float64 {
	if len(x) == 0 {
		return nil
	}

	parts := make([]float64, 2*len(x))
	re, im := parts[:len(x)], parts[len(x):]
	for i, c := range x {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(x))
	algovecmath.Magnitude(out, re, im)
	return out
}
