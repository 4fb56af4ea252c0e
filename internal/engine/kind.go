// Package engine implements span-cached evaluation of keyframed scalar curves.
//
// An Iterator caches the knot span containing its current time together with
// the interpolation coefficients derived for that span. Repeated evaluation at
// nearby times, the dominant access pattern under per-frame animation
// advancement, then skips both the key search and the tangent computation.
package engine

import "fmt"

// Kind enumerates the interpolation schemes a curve can declare.
type Kind int

const (
	// KindStep holds each key's value until the next key.
	KindStep Kind = iota

	// KindLinear connects consecutive keys with straight segments.
	KindLinear

	// KindSmoothstep connects consecutive keys with the 3t^2-2t^3 ease.
	KindSmoothstep

	// KindCatmullRom is a cardinal spline with tension fixed at 0.5.
	KindCatmullRom

	// KindCardinal is a cardinal spline with caller-supplied tension.
	KindCardinal

	// KindCardinalStable is KindCardinal with tangents rescaled to stay
	// well-behaved under non-uniform key spacing.
	KindCardinalStable
)

// IsHermite reports whether the kind needs endpoint tangents.
// Only Hermite-family kinds pay the tangent computation on re-seek.
func (k Kind) IsHermite() bool {
	return k == KindCatmullRom || k == KindCardinal || k == KindCardinalStable
}

// String returns a short name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindLinear:
		return "linear"
	case KindSmoothstep:
		return "smoothstep"
	case KindCatmullRom:
		return "catmull-rom"
	case KindCardinal:
		return "cardinal"
	case KindCardinalStable:
		return "cardinal-stable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}
