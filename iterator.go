package animcurve

import (
	"github.com/nicolasserrano/go-anim-curve/internal/engine"
)

// Iterator samples one curve, caching the active knot span so sequential
// advancement stays O(1) per tick. Each iterator owns its cache
// independently; any number of iterators may read the same curve.
//
// The iterator holds a read-only view of the curve's key slice. Mutating the
// curve while an iterator is in use leaves the cache stale; call Reset
// afterwards to rebuild it.
type Iterator struct {
	curve *Curve
	ev    *engine.Iterator
}

// NewIterator binds an iterator to c, seeked to time 0.
func NewIterator(c *Curve) *Iterator {
	return NewIteratorAt(c, 0)
}

// NewIteratorAt binds an iterator to c, seeked to startTime.
func NewIteratorAt(c *Curve, startTime float64) *Iterator {
	return &Iterator{
		curve: c,
		ev:    engine.NewIterator(c.Keys, c.Type.kind(), c.Tension, startTime),
	}
}

// Reset re-seeks the iterator to an arbitrary time, rebuilding the cached
// span and coefficients from scratch.
func (it *Iterator) Reset(time float64) {
	it.ev.Reset(time)
}

// Advance moves the current time by amount. This is the per-frame fast path:
// while the new time stays inside the cached span no recomputation occurs.
func (it *Iterator) Advance(amount float64) {
	it.ev.Advance(amount)
}

// Value samples the curve at an arbitrary time, reusing the cached span when
// possible, and leaves the iterator positioned there.
func (it *Iterator) Value(time float64) float64 {
	return it.ev.ValueAt(time)
}

// Evaluate returns the curve value at the iterator's current time without
// moving it.
func (it *Iterator) Evaluate() float64 {
	return it.ev.Evaluate()
}

// Time returns the current query time.
func (it *Iterator) Time() float64 {
	return it.ev.Time()
}

// Curve returns the curve the iterator reads.
func (it *Iterator) Curve() *Curve {
	return it.curve
}
