package magnitude

import "github.com/cwbudde/algo-magnitude/internal/vecmath"

// Abs returns the non-negative magnitude of x: x when x >= 0, otherwise -x.
// A negative zero yields +0. NaN fails the comparison and comes back negated.
func Abs(x float64) float64 {
	switch {
	case x > 0:
		return x
	case x == 0:
		return 0
	}
	return -x
}

// AbsSlice returns a new slice with out[i] = Abs(x[i]).
// x is not modified. A nil or empty x yields an empty, non-nil slice.
func AbsSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	vecmath.AbsBlock(out, x)
	return out
}

// AbsBlock writes dst[i] = Abs(src[i]) without allocating.
// Slices must have equal length. Panics if lengths differ.
func AbsBlock(dst, src []float64) {
	vecmath.AbsBlock(dst, src)
}

// AbsBlockInPlace replaces every element of x with its magnitude.
func AbsBlockInPlace(x []float64) {
	vecmath.AbsBlockInPlace(x)
}

// Peak returns the largest magnitude in x, or 0 for an empty slice.
// NaN elements are ignored.
func Peak(x []float64) float64 {
	return vecmath.MaxAbs(x)
}

// Kernel names the block kernel selected for this host ("generic", "avx2", "neon").
func Kernel() string {
	return vecmath.Implementation()
}
