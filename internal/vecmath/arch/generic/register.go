package generic

import (
	"github.com/cwbudde/algo-magnitude/internal/cpu"
	"github.com/cwbudde/algo-magnitude/internal/vecmath/registry"
)

// init registers the pure Go kernels, the fallback every host can run.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		AbsBlock:        AbsBlock,
		AbsBlockInPlace: AbsBlockInPlace,
		MaxAbs:          MaxAbs,
	})
}
