package engine

// Cardinal spline constants
const (
	// Catmull-Rom is the cardinal spline with this fixed tension; the
	// curve's own tension parameter is ignored for that kind.
	catmullRomTension = 0.5

	// Stable-cardinal tangents scale the span width against the full
	// neighbor distance; the factor of 2 makes uniformly spaced keys
	// reproduce the classic cardinal tangents.
	stableSpacingScale = 2.0
)
