package generic

// AbsBlock writes dst[i] = |src[i]|.
// Slices must have equal length. Panics if lengths differ.
func AbsBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i, v := range src {
		dst[i] = abs(v)
	}
}

// AbsBlockInPlace writes x[i] = |x[i]|.
func AbsBlockInPlace(x []float64) {
	for i, v := range x {
		x[i] = abs(v)
	}
}

// abs maps both zeros to +0. NaN is not >= 0, so it is negated like any
// other value failing the sign check.
func abs(x float64) float64 {
	switch {
	case x > 0:
		return x
	case x == 0:
		return 0
	}
	return -x
}
