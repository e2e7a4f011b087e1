package magnitude

import "iter"

// AbsSeq returns an iterator yielding Abs(v) for each v of seq, in order.
// Nothing is evaluated until the result is ranged over.
func AbsSeq(seq iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range seq {
			if !yield(Abs(v)) {
				return
			}
		}
	}
}
