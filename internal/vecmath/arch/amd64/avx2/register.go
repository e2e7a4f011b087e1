//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-magnitude/internal/cpu"
	"github.com/cwbudde/algo-magnitude/internal/vecmath/registry"
)

// init registers the AVX2 kernels. They are preferred over generic on
// Haswell and later.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,

		AbsBlock:        AbsBlock,
		AbsBlockInPlace: AbsBlockInPlace,
		MaxAbs:          MaxAbs,
	})
}
