package generic

// MaxAbs returns the maximum absolute value in x.
// Returns 0 for an empty slice. NaN elements are skipped.
func MaxAbs(x []float64) float64 {
	max := 0.0
	for _, v := range x {
		if a := abs(v); a > max {
			max = a
		}
	}
	return max
}
