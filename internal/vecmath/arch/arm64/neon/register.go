//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-magnitude/internal/cpu"
	"github.com/cwbudde/algo-magnitude/internal/vecmath/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		AbsBlock:        AbsBlock,
		AbsBlockInPlace: AbsBlockInPlace,
		MaxAbs:          MaxAbs,
	})
}
