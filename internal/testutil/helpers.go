// Package testutil provides reusable test helper functions for curve
// evaluation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits exact-arithmetic comparisons where only
	// rounding noise is expected.
	DefaultTolerance = 1e-12

	// LooseTolerance suits comparisons across different evaluation orders.
	LooseTolerance = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertFinite verifies that a single value is neither NaN nor Inf.
func AssertFinite(t *testing.T, v float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return assert.Fail(t, "value not finite", "got %v", v)
	}
	return true
}

// AssertSlicesInDelta verifies two equally long slices match elementwise
// within tolerance.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "slice lengths differ") {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"slices differ at index %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}
