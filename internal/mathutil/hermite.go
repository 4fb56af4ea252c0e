// Package mathutil provides the scalar interpolation primitives shared by the
// curve engine.
package mathutil

// Lerp linearly interpolates from a to b by the parameter t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep remaps t with the cubic ease 3t^2 - 2t^3.
// The remap has zero slope at t=0 and t=1, producing ease-in/ease-out
// when fed to Lerp.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Hermite evaluates the cubic Hermite basis at t for endpoint values p0, p1
// and endpoint tangents m0, m1:
//
//	h00(t)*p0 + h10(t)*m0 + h01(t)*p1 + h11(t)*m1
//
// with the standard basis polynomials
//
//	h00 = (1+2t)(1-t)^2   h10 = t(1-t)^2
//	h01 = t^2(3-2t)       h11 = t^2(t-1)
func Hermite(p0, m0, p1, m1, t float64) float64 {
	omt := 1 - t
	return p0*(1+2*t)*omt*omt +
		m0*t*omt*omt +
		p1*t*t*(3-2*t) +
		m1*t*t*(t-1)
}
