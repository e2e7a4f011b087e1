//go:build arm64 && !purego

package neon

import "math"

const signBit = uint64(1 << 63)

// fabs clears the sign bit like FABS. NaN lanes have their sign flipped
// instead, matching the scalar sign check.
func fabs(x float64) float64 {
	b := math.Float64bits(x)
	if x != x {
		return math.Float64frombits(b ^ signBit)
	}
	return math.Float64frombits(b &^ signBit)
}

// AbsBlock writes dst[i] = |src[i]| two lanes at a time, matching the
// 128-bit FABS.2D register width.
// Slices must have equal length. Panics if lengths differ.
func AbsBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(src)
	i := 0
	for ; i+1 < n; i += 2 {
		s := src[i : i+2 : i+2]
		d := dst[i : i+2 : i+2]
		d[0] = fabs(s[0])
		d[1] = fabs(s[1])
	}
	if i < n {
		dst[i] = fabs(src[i])
	}
}

// AbsBlockInPlace writes x[i] = |x[i]|.
func AbsBlockInPlace(x []float64) {
	AbsBlock(x, x)
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice. NaN elements are skipped.
func MaxAbs(x []float64) float64 {
	var m0, m1 float64

	n := len(x)
	i := 0
	for ; i+1 < n; i += 2 {
		if v := fabs(x[i]); v > m0 {
			m0 = v
		}
		if v := fabs(x[i+1]); v > m1 {
			m1 = v
		}
	}
	if i < n {
		if v := fabs(x[i]); v > m0 {
			m0 = v
		}
	}

	return max(m0, m1)
}
