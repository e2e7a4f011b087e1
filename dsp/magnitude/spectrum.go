package magnitude

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minFFTSize is the smallest transform length Spectrum plans.
const minFFTSize = 16

// Spectrum returns the one-sided magnitude spectrum of x.
//
// x is zero-padded to the next power of two n (at least minFFTSize) and transformed
// with an unnormalized forward FFT. The result holds the n/2+1 bins from DC
// to Nyquist. Empty input returns nil and no error.
func Spectrum(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, nil
	}

	n := max(nextPowerOf2(len(x)), minFFTSize)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("magnitude: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("magnitude: forward FFT failed: %w", err)
	}

	return Complex(out[:n/2+1]), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
