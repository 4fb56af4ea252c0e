package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicolasserrano/go-anim-curve/internal/testutil"
)

func allKinds() []Kind {
	return []Kind{KindStep, KindLinear, KindSmoothstep, KindCatmullRom, KindCardinal, KindCardinalStable}
}

// sweep samples the iterator over a wide, boundary-heavy set of times.
func sweep(it *Iterator, keys []Key) []float64 {
	times := []float64{-1e12, -1, 0, 1e-9, 0.5, 1, 1.5, 2, 3, 1e12}
	for _, k := range keys {
		times = append(times, k.Time, k.Time-1e-9, k.Time+1e-9)
	}

	out := make([]float64, 0, len(times))
	for _, time := range times {
		out = append(out, it.ValueAt(time))
	}
	return out
}

// TestEvaluate_SingleKey verifies single-key curves hold their one value
// everywhere for every kind.
func TestEvaluate_SingleKey(t *testing.T) {
	keys := []Key{{Time: 1, Value: 42}}

	for _, kind := range allKinds() {
		it := NewIterator(keys, kind, 0.5, 0)
		for _, time := range []float64{-1e9, 0, 1, 2, 1e9} {
			assert.Equal(t, 42.0, it.ValueAt(time), "%v at t=%v", kind, time)
		}
	}
}

// TestEvaluate_CoincidentKeyTimes verifies curves violating the
// strictly-increasing contract still evaluate to finite values: every
// division that would blow up is guarded to zero instead.
func TestEvaluate_CoincidentKeyTimes(t *testing.T) {
	coincident := [][]Key{
		{{Time: 0, Value: 0}, {Time: 0, Value: 5}},
		{{Time: 0, Value: 0}, {Time: 0, Value: 1}, {Time: 1, Value: 2}},
		{{Time: 0, Value: 0}, {Time: 1, Value: 1}, {Time: 1, Value: 3}, {Time: 2, Value: 0}},
		{{Time: 0, Value: 1}, {Time: 0, Value: 2}, {Time: 0, Value: 3}},
	}

	for _, keys := range coincident {
		for _, kind := range allKinds() {
			it := NewIterator(keys, kind, 0.5, 0)
			testutil.AssertNoNaNOrInf(t, sweep(it, keys),
				"%v over keys %v", kind, keys)
		}
	}
}

// TestEvaluate_ExtremeInputs verifies huge times, tensions and values stay
// finite through evaluation.
func TestEvaluate_ExtremeInputs(t *testing.T) {
	keys := []Key{{Time: 0, Value: -1e15}, {Time: 1e-12, Value: 1e15}, {Time: 1e15, Value: 0}}

	for _, kind := range allKinds() {
		it := NewIterator(keys, kind, 1e9, 0)
		testutil.AssertNoNaNOrInf(t, sweep(it, keys), "%v", kind)
	}
}

// TestEvaluate_CoincidentKnotSpan pins where the span search lands when two
// knots share a time: the smallest index whose successor lies strictly beyond
// the query time, which skips past the whole coincident group.
func TestEvaluate_CoincidentKnotSpan(t *testing.T) {
	keys := []Key{{Time: 0, Value: 1}, {Time: 2, Value: 3}, {Time: 2, Value: 7}, {Time: 4, Value: 9}}

	it := NewIterator(keys, KindLinear, 0, 2)
	assert.Equal(t, 2.0, it.left)
	assert.Equal(t, 4.0, it.right)
	assert.Equal(t, 7.0, it.p0, "the last coincident knot should win the span start")
	testutil.AssertFinite(t, it.Evaluate())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "step", KindStep.String())
	assert.Equal(t, "linear", KindLinear.String())
	assert.Equal(t, "smoothstep", KindSmoothstep.String())
	assert.Equal(t, "catmull-rom", KindCatmullRom.String())
	assert.Equal(t, "cardinal", KindCardinal.String())
	assert.Equal(t, "cardinal-stable", KindCardinalStable.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindIsHermite(t *testing.T) {
	assert.False(t, KindStep.IsHermite())
	assert.False(t, KindLinear.IsHermite())
	assert.False(t, KindSmoothstep.IsHermite())
	assert.True(t, KindCatmullRom.IsHermite())
	assert.True(t, KindCardinal.IsHermite())
	assert.True(t, KindCardinalStable.IsHermite())
}
