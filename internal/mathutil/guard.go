package mathutil

import "math"

// FiniteOrZero returns x, or 0 when x is NaN or infinite.
//
// The curve engine computes several ratios whose denominators can collapse to
// zero for degenerate key data (coincident knot times, zero-width spans). The
// engine's contract is that such divisions contribute nothing rather than
// propagating NaN/Inf into sampled values.
func FiniteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
