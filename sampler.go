package animcurve

import (
	"gonum.org/v1/gonum/floats"
)

// Sampler streams uniformly spaced samples from a curve, riding the
// iterator's incremental fast path. It suits fixed-rate consumers such as a
// render loop or a control-signal writer.
type Sampler struct {
	it       *Iterator
	interval float64
}

// NewSampler creates a sampler emitting one value every interval time units,
// the first at startTime. A negative interval walks the curve backward.
func NewSampler(c *Curve, startTime, interval float64) *Sampler {
	return &Sampler{
		it:       NewIteratorAt(c, startTime),
		interval: interval,
	}
}

// Next returns the value at the current sample time and steps to the next.
func (s *Sampler) Next() float64 {
	v := s.it.Evaluate()
	s.it.Advance(s.interval)

	return v
}

// Sample fills dst with consecutive samples and returns it.
func (s *Sampler) Sample(dst []float64) []float64 {
	for i := range dst {
		dst[i] = s.Next()
	}

	return dst
}

// Time returns the time of the next sample.
func (s *Sampler) Time() float64 {
	return s.it.Time()
}

// Seek repositions the sampler so the next sample is taken at time t.
func (s *Sampler) Seek(t float64) {
	s.it.Reset(t)
}

// SampleRange evaluates c at n uniformly spaced times covering [t0, t1]
// inclusive on both ends. It returns nil when n < 2, as both endpoints must
// be representable.
func SampleRange(c *Curve, t0, t1 float64, n int) []float64 {
	if n < 2 {
		return nil
	}

	times := floats.Span(make([]float64, n), t0, t1)

	out := make([]float64, n)
	it := NewIteratorAt(c, t0)
	for i, t := range times {
		out[i] = it.Value(t)
	}

	return out
}
