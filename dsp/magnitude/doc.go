// Package magnitude computes absolute values of real samples, complex
// samples and spectra.
//
// Abs is the scalar operation. AbsSlice maps it over a slice and returns a
// new slice of the same length and order; AbsSeq does the same lazily over
// an iterator. The block functions write into caller-owned buffers and use
// the fastest kernel available on the host CPU.
//
// All functions treat both zeros as +0 and map ±Inf to +Inf. NaN fails the
// x >= 0 check and is returned negated, with the same bits on every CPU.
package magnitude
