//go:build amd64 && !purego

package vecmath

import (
	_ "github.com/cwbudde/algo-magnitude/internal/vecmath/arch/amd64/avx2" // register AVX2 kernels
	_ "github.com/cwbudde/algo-magnitude/internal/vecmath/arch/generic"    // register generic kernels
)
