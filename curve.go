package animcurve

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nicolasserrano/go-anim-curve/internal/engine"
)

// Key is one (time, value) control point of a curve.
type Key = engine.Key

// K is shorthand for building a key inline.
func K(time, value float64) Key {
	return Key{Time: time, Value: value}
}

// Type enumerates the interpolation schemes a curve can declare.
type Type int

const (
	// Step holds each key's value until the next key; the output changes
	// discontinuously at each knot.
	Step Type = iota

	// Linear connects consecutive keys with straight segments.
	Linear

	// Smoothstep connects consecutive keys with the 3t²-2t³ ease, giving
	// zero slope at both ends of each segment.
	Smoothstep

	// CatmullRom is a cardinal spline with tension fixed at 0.5. It passes
	// through every keyframe.
	CatmullRom

	// Cardinal is a cardinal spline whose tangent magnitude is scaled by
	// the curve's Tension. It passes through every keyframe.
	Cardinal

	// CardinalStable is Cardinal with tangents rescaled so that strongly
	// non-uniform key spacing does not produce overshooting tangents.
	CardinalStable
)

// String returns the type name understood by ParseType.
func (t Type) String() string {
	switch t {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Smoothstep:
		return "smoothstep"
	case CatmullRom:
		return "catmullrom"
	case Cardinal:
		return "cardinal"
	case CardinalStable:
		return "cardinalstable"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a type name to its Type. Matching is case-insensitive and
// accepts hyphenated spellings ("catmull-rom", "cardinal-stable").
func ParseType(name string) (Type, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "step":
		return Step, nil
	case "linear":
		return Linear, nil
	case "smoothstep":
		return Smoothstep, nil
	case "catmullrom":
		return CatmullRom, nil
	case "cardinal":
		return Cardinal, nil
	case "cardinalstable":
		return CardinalStable, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// kind maps the public type onto the engine enum. Out-of-range types fall
// back to step so that evaluation stays silent even for curves built with a
// bogus literal Type.
func (t Type) kind() engine.Kind {
	switch t {
	case Linear:
		return engine.KindLinear
	case Smoothstep:
		return engine.KindSmoothstep
	case CatmullRom:
		return engine.KindCatmullRom
	case Cardinal:
		return engine.KindCardinal
	case CardinalStable:
		return engine.KindCardinalStable
	default:
		return engine.KindStep
	}
}

// Common errors returned when constructing curves and tracks.
var (
	// ErrInvalidCurve indicates curve data that violates the documented
	// contract (non-finite fields, and so on).
	ErrInvalidCurve = errors.New("invalid curve")

	// ErrUnsortedKeys indicates key times that are not strictly increasing.
	ErrUnsortedKeys = errors.New("curve keys out of order")

	// ErrUnknownType indicates an interpolation type this package does not
	// define.
	ErrUnknownType = errors.New("unknown interpolation type")

	// ErrDuplicateChannel indicates a track channel name registered twice.
	ErrDuplicateChannel = errors.New("duplicate track channel")
)

// Curve is keyframed scalar data: an ordered key sequence, an interpolation
// type, and a tension parameter used by the cardinal types. The curve owner
// keeps the data; iterators only hold a read-only view of it.
//
// The zero value is a valid empty curve that evaluates to 0 everywhere.
type Curve struct {
	// Type selects the interpolation scheme.
	Type Type

	// Tension scales tangent magnitude for Cardinal and CardinalStable.
	// It is ignored by every other type.
	Tension float64

	// Keys are the control points, sorted by strictly increasing time.
	Keys []Key
}

// New builds a validated curve. Curves may also be constructed literally:
// evaluation tolerates arbitrary key data, but New rejects data that violates
// the documented contract so authoring mistakes fail loudly.
func New(typ Type, tension float64, keys []Key) (*Curve, error) {
	c := &Curve{Type: typ, Tension: tension, Keys: keys}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the curve against the iterator contract: a known type,
// finite tension, finite key fields, and strictly increasing key times.
func (c *Curve) Validate() error {
	if c.Type < Step || c.Type > CardinalStable {
		return fmt.Errorf("%w: Type(%d)", ErrUnknownType, int(c.Type))
	}

	if math.IsNaN(c.Tension) || math.IsInf(c.Tension, 0) {
		return fmt.Errorf("%w: tension must be finite, got %v", ErrInvalidCurve, c.Tension)
	}

	for i, k := range c.Keys {
		if math.IsNaN(k.Time) || math.IsInf(k.Time, 0) ||
			math.IsNaN(k.Value) || math.IsInf(k.Value, 0) {
			return fmt.Errorf("%w: key %d is not finite", ErrInvalidCurve, i)
		}

		if i > 0 && k.Time <= c.Keys[i-1].Time {
			return fmt.Errorf("%w: key %d at t=%v does not advance past t=%v",
				ErrUnsortedKeys, i, k.Time, c.Keys[i-1].Time)
		}
	}

	return nil
}

// Duration returns the time covered by the key range, 0 for curves with
// fewer than two keys.
func (c *Curve) Duration() float64 {
	if len(c.Keys) < 2 {
		return 0
	}

	return c.Keys[len(c.Keys)-1].Time - c.Keys[0].Time
}
