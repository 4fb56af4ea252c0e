package animcurve

import (
	"github.com/nicolasserrano/go-anim-curve/internal/engine"
)

// NewStep builds a validated step curve.
func NewStep(keys ...Key) (*Curve, error) {
	return New(Step, 0, keys)
}

// NewLinear builds a validated linear curve.
func NewLinear(keys ...Key) (*Curve, error) {
	return New(Linear, 0, keys)
}

// NewSmoothstep builds a validated smoothstep curve.
func NewSmoothstep(keys ...Key) (*Curve, error) {
	return New(Smoothstep, 0, keys)
}

// NewCatmullRom builds a validated Catmull-Rom curve. Tension is fixed at
// 0.5 by the scheme itself.
func NewCatmullRom(keys ...Key) (*Curve, error) {
	return New(CatmullRom, 0, keys)
}

// NewCardinal builds a validated cardinal curve with the given tension.
func NewCardinal(tension float64, keys ...Key) (*Curve, error) {
	return New(Cardinal, tension, keys)
}

// NewCardinalStable builds a validated stable-cardinal curve with the given
// tension.
func NewCardinalStable(tension float64, keys ...Key) (*Curve, error) {
	return New(CardinalStable, tension, keys)
}

// At samples c at a single time. Each call seeks from scratch; keep an
// [Iterator] or [Sampler] for repeated sampling.
func At(c *Curve, time float64) float64 {
	return engine.NewIterator(c.Keys, c.Type.kind(), c.Tension, time).Evaluate()
}
