// Package vecmath provides block magnitude kernels over float64 slices.
//
// The implementation is chosen once, on first use, from the kernels
// registered in registry.Global: the highest priority entry whose SIMD level
// the CPU supports. Build with the purego tag to register only the generic
// kernels.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-magnitude/internal/cpu"
	"github.com/cwbudde/algo-magnitude/internal/vecmath/registry"
)

var (
	kernelOnce sync.Once
	kernel     *registry.OpEntry
)

func selected() *registry.OpEntry {
	kernelOnce.Do(initKernel)
	return kernel
}

func initKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no kernel registered (missing generic fallback?)")
	}

	if entry.AbsBlock == nil || entry.AbsBlockInPlace == nil || entry.MaxAbs == nil {
		panic("vecmath: kernel " + entry.Name + " is missing an operation")
	}

	kernel = entry
}

// Implementation returns the name of the selected kernel, e.g. "avx2".
func Implementation() string {
	return selected().Name
}

// AbsBlock writes dst[i] = |src[i]|.
// Slices must have equal length. Panics if lengths differ.
// Both zeros map to +0 and ±Inf to +Inf. NaN comes back with its sign
// flipped, as the scalar x >= 0 check produces.
func AbsBlock(dst, src []float64) {
	selected().AbsBlock(dst, src)
}

// AbsBlockInPlace writes x[i] = |x[i]|.
func AbsBlockInPlace(x []float64) {
	selected().AbsBlockInPlace(x)
}

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice. NaN elements are skipped.
func MaxAbs(x []float64) float64 {
	return selected().MaxAbs(x)
}
