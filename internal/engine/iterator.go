package engine

import (
	"math"

	"github.com/nicolasserrano/go-anim-curve/internal/mathutil"
)

// Key is one (time, value) control point of a curve. Keys are expected to be
// sorted by strictly increasing time.
type Key struct {
	Time  float64
	Value float64
}

// Iterator evaluates one curve, caching the active knot span [left, right)
// and the coefficients derived for it. All fields are a pure function of the
// key data and the current time; there is no other hidden state.
//
// The key slice is a non-owning view. The iterator never mutates it, and the
// owner must not mutate it while the iterator is in use; after a mutation the
// caller has to force a Reset, as there is no invalidation notification.
type Iterator struct {
	keys    []Key
	kind    Kind
	tension float64

	time  float64
	left  float64 // span lower bound, inclusive
	right float64 // span upper bound, exclusive
	recip float64 // 1/(right-left); 0 for unbounded or zero-width spans
	p0    float64 // value at the span's left endpoint
	p1    float64 // value at the span's right endpoint
	m0    float64 // tangent at the span's left endpoint (Hermite kinds only)
	m1    float64 // tangent at the span's right endpoint (Hermite kinds only)
}

// NewIterator binds an iterator to the given curve data and seeks it to
// startTime. Tension only matters for the cardinal kinds.
func NewIterator(keys []Key, kind Kind, tension float64, startTime float64) *Iterator {
	it := &Iterator{
		keys:    keys,
		kind:    kind,
		tension: tension,
	}
	it.Reset(startTime)

	return it
}

// Reset recomputes the cached span and coefficients for an arbitrary time,
// independent of prior state. This is the slow path: O(k) in the key count.
// Advance and ValueAt reuse the cache whenever the time stays inside the
// current span.
func (it *Iterator) Reset(time float64) {
	it.time = time

	if len(it.keys) == 0 {
		it.left = math.Inf(-1)
		it.right = math.Inf(1)
		it.recip = 0
		it.p0, it.p1 = 0, 0
		it.m0, it.m1 = 0, 0

		return
	}

	if time < it.keys[0].Time {
		// Degenerate span clamped to the first key.
		it.left = math.Inf(-1)
		it.right = it.keys[0].Time
		it.recip = 0
		it.p0 = it.keys[0].Value
		it.p1 = it.p0
		it.m0, it.m1 = 0, 0

		return
	}

	last := len(it.keys) - 1
	if time >= it.keys[last].Time {
		// Degenerate span clamped to the last key.
		it.left = it.keys[last].Time
		it.right = math.Inf(1)
		it.recip = 0
		it.p0 = it.keys[last].Value
		it.p1 = it.p0
		it.m0, it.m1 = 0, 0

		return
	}

	// Forward scan for the span containing time. Animation curves carry few
	// keys, where the scan beats a binary search; either yields the same span.
	i := 0
	for it.keys[i+1].Time <= time {
		i++
	}

	it.left = it.keys[i].Time
	it.right = it.keys[i+1].Time
	it.recip = mathutil.FiniteOrZero(1 / (it.right - it.left))
	it.p0 = it.keys[i].Value
	it.p1 = it.keys[i+1].Value
	it.m0, it.m1 = 0, 0

	if it.kind.IsHermite() {
		it.calcTangents(i)
	}
}

// Evaluate returns the curve value at the iterator's current time. It is a
// pure function of the cached state and performs no search or allocation.
func (it *Iterator) Evaluate() float64 {
	if it.kind == KindStep {
		return it.p0
	}

	// Unbounded and zero-width spans carry recip == 0 together with
	// p0 == p1, so forcing t to 0 lands on the clamped value.
	t := 0.0
	if it.recip != 0 {
		t = (it.time - it.left) * it.recip
	}

	switch it.kind {
	case KindLinear:
		return mathutil.Lerp(it.p0, it.p1, t)
	case KindSmoothstep:
		return mathutil.Lerp(it.p0, it.p1, mathutil.Smoothstep(t))
	default:
		return mathutil.Hermite(it.p0, it.m0, it.p1, it.m1, t)
	}
}

// Advance moves the current time by amount, re-seeking only when the new time
// leaves the cached span. The bounds checks mirror the half-open span: moving
// forward re-seeks at right (exclusive upper bound), moving backward re-seeks
// below left (inclusive lower bound). Landing exactly on left stays cached.
func (it *Iterator) Advance(amount float64) {
	time := it.time + amount

	if amount >= 0 {
		if time >= it.right {
			it.Reset(time)

			return
		}
	} else if time < it.left {
		it.Reset(time)

		return
	}

	it.time = time
}

// ValueAt samples the curve at an arbitrary time, reusing the cached span
// when the time falls inside [left, right).
func (it *Iterator) ValueAt(time float64) float64 {
	if time < it.left || time >= it.right {
		it.Reset(time)
	} else {
		it.time = time
	}

	return it.Evaluate()
}

// Time returns the current query time.
func (it *Iterator) Time() float64 {
	return it.time
}
