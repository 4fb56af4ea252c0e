// Package animcurve evaluates piecewise-defined scalar curves keyed by time,
// the property curves that drive animation and control-signal work.
//
// A [Curve] is an ordered sequence of (time, value) keys plus an
// interpolation [Type] and a tension parameter for the cardinal spline types.
// An [Iterator] samples a curve while caching the active knot span and its
// interpolation coefficients, so repeated lookups at nearby times, the
// dominant pattern in a running animation, skip both the key search and the
// tangent computation.
//
// # Quick Start
//
// One-shot sampling:
//
//	c, err := animcurve.NewLinear(animcurve.K(0, 0), animcurve.K(10, 10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := animcurve.At(c, 5) // 5
//
// Per-frame advancement over the cached fast path:
//
//	it := animcurve.NewIterator(c)
//	for frame := 0; frame < 600; frame++ {
//	    it.Advance(1.0 / 60)
//	    apply(it.Evaluate())
//	}
//
// Uniform-rate batch sampling:
//
//	values := animcurve.SampleRange(c, 0, 10, 256)
//
// # Interpolation Types
//
//   - [Step]: holds each key's value until the next key.
//   - [Linear]: straight segments between keys.
//   - [Smoothstep]: the 3t²-2t³ ease between keys.
//   - [CatmullRom]: cardinal spline with fixed 0.5 tension.
//   - [Cardinal]: cardinal spline with caller-supplied tension.
//   - [CardinalStable]: cardinal tangents rescaled for non-uniform key
//     spacing.
//
// The spline types pass through every keyframe; their endpoint tangents are
// derived from the neighboring keys, with edge neighbors synthesized by
// linear extrapolation.
//
// # Numerical Policy
//
// Evaluation never signals. Out-of-range times clamp to the nearest endpoint
// value, an empty curve evaluates to 0, and any intermediate division that
// would produce NaN or Inf (coincident knot times, degenerate spacing) is
// treated as zero contribution instead of propagating. [Curve.Validate]
// rejects such degenerate data up front for callers that prefer loud
// failures.
//
// # Concurrency
//
// Iterators are single-threaded value computers. Each iterator owns its cache
// independently, so any number of iterators may read the same curve, but a
// curve must not be mutated while iterators referencing it are in use; after
// a mutation, call [Iterator.Reset] on each of them.
package animcurve
