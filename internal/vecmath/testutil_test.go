package vecmath

import (
	"math"
	"strconv"
	"sync"
)

// Benchmark sizes shared across benchmark files.
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
}

// paritySizes covers empty input, every unroll tail and a few large blocks.
var paritySizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1023, 1024, 1025}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// alternating returns n values of alternating sign, including zeros and
// NaNs of both signs at fixed positions.
func alternating(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		v := float64((i*37)%113) + 0.125
		switch {
		case i%11 == 5:
			v = 0
		case i%2 == 0:
			v = -v
		}
		x[i] = v
	}
	if n > 3 {
		x[3] = negZero
	}
	if n > 6 {
		x[6] = negNaN
	}
	if n > 9 {
		x[9] = posNaN
	}
	return x
}

var (
	negZero = math.Copysign(0, -1)
	posNaN  = math.NaN()
	negNaN  = math.Copysign(math.NaN(), -1)
)

func resetKernelForTest() {
	kernel = nil
	kernelOnce = sync.Once{}
}
