//go:build purego || !(amd64 || arm64)

package vecmath

import (
	_ "github.com/cwbudde/algo-magnitude/internal/vecmath/arch/generic" // register generic kernels
)
