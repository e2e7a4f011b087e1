//go:build amd64 && !purego

package avx2

import "math"

const signBit = uint64(1 << 63)

// AbsBlock writes dst[i] = |src[i]| four lanes at a time.
// Slices must have equal length. Panics if lengths differ.
// TODO: replace the unrolled loop with a VANDPD assembly kernel.
func AbsBlock(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	n := len(src)
	i := 0
	for ; i+3 < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] = clearSign(s[0])
		d[1] = clearSign(s[1])
		d[2] = clearSign(s[2])
		d[3] = clearSign(s[3])
	}
	for ; i < n; i++ {
		dst[i] = clearSign(src[i])
	}
}

// AbsBlockInPlace writes x[i] = |x[i]|.
func AbsBlockInPlace(x []float64) {
	AbsBlock(x, x)
}

// MaxAbs returns the maximum absolute value in x using four independent
// accumulators. Returns 0 for an empty slice. NaN elements are skipped.
func MaxAbs(x []float64) float64 {
	var m0, m1, m2, m3 float64

	n := len(x)
	i := 0
	for ; i+3 < n; i += 4 {
		s := x[i : i+4 : i+4]
		if v := clearSign(s[0]); v > m0 {
			m0 = v
		}
		if v := clearSign(s[1]); v > m1 {
			m1 = v
		}
		if v := clearSign(s[2]); v > m2 {
			m2 = v
		}
		if v := clearSign(s[3]); v > m3 {
			m3 = v
		}
	}
	for ; i < n; i++ {
		if v := clearSign(x[i]); v > m0 {
			m0 = v
		}
	}

	return max(m0, m1, m2, m3)
}

// clearSign clears the IEEE 754 sign bit, the mask VANDPD applies per lane.
// NaN lanes have their sign flipped instead, matching the scalar sign check.
func clearSign(x float64) float64 {
	b := math.Float64bits(x)
	if x != x {
		return math.Float64frombits(b ^ signBit)
	}
	return math.Float64frombits(b &^ signBit)
}
