package engine

import "github.com/nicolasserrano/go-anim-curve/internal/mathutil"

// calcTangents derives the endpoint tangents for the span running from
// keys[i] to keys[i+1]. The computation reads one key on either side of the
// span; at the curve's edges the missing neighbor is synthesized by linear
// extrapolation so edge spans get the same treatment as interior ones.
//
// Every ratio is guarded to zero when non-finite, so coincident or reversed
// knot times degrade to flat tangents instead of propagating NaN/Inf.
func (it *Iterator) calcTangents(i int) {
	b := it.keys[i]
	c := it.keys[i+1]

	var a Key
	if i > 0 {
		a = it.keys[i-1]
	} else {
		a = extrapolate(it.keys[0], it.keys[1])
	}

	last := len(it.keys) - 1

	var d Key
	if i+2 <= last {
		d = it.keys[i+2]
	} else {
		d = extrapolate(it.keys[last], it.keys[last-1])
	}

	if it.kind == KindCardinalStable {
		// Scale factors compensate for non-uniform key spacing.
		s1 := mathutil.FiniteOrZero(stableSpacingScale * (c.Time - b.Time) / (c.Time - a.Time))
		s2 := mathutil.FiniteOrZero(stableSpacingScale * (c.Time - b.Time) / (d.Time - b.Time))

		it.m0 = it.tension * s1 * (c.Value - a.Value)
		it.m1 = it.tension * s2 * (d.Value - b.Value)

		return
	}

	// Classic cardinal scheme: reproject the outer neighbors onto the span's
	// time scale, then difference across the span endpoints.
	s1 := mathutil.FiniteOrZero((c.Time - b.Time) / (b.Time - a.Time))
	s2 := mathutil.FiniteOrZero((c.Time - b.Time) / (d.Time - c.Time))

	av := b.Value + (a.Value-b.Value)*s1
	dv := c.Value + (d.Value-c.Value)*s2

	tension := it.tension
	if it.kind == KindCatmullRom {
		tension = catmullRomTension
	}

	it.m0 = tension * (c.Value - av)
	it.m1 = tension * (dv - b.Value)
}

// extrapolate synthesizes a neighbor one step beyond edge, mirroring its
// offset from inner: edge + (edge - inner), componentwise in time and value.
func extrapolate(edge, inner Key) Key {
	return Key{
		Time:  2*edge.Time - inner.Time,
		Value: 2*edge.Value - inner.Value,
	}
}
