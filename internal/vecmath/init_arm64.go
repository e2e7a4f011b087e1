//go:build arm64 && !purego

package vecmath

import (
	_ "github.com/cwbudde/algo-magnitude/internal/vecmath/arch/arm64/neon" // register NEON kernels
	_ "github.com/cwbudde/algo-magnitude/internal/vecmath/arch/generic"    // register generic kernels
)
