// Package testutil holds float slice assertions and deterministic inputs
// shared by package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceIdentical fails t unless got and want hold the same values
// with the same sign bits. NaNs must match bit for bit.
func RequireSliceIdentical(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !Identical(got[i], want[i]) {
			t.Fatalf("index %d: got %v (signbit %v), want %v (signbit %v)",
				i, got[i], math.Signbit(got[i]), want[i], math.Signbit(want[i]))
		}
	}
}

// Identical reports whether a and b are equal including the sign of zero.
// NaNs are compared by their bit patterns, so a NaN's sign counts too.
func Identical(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.Float64bits(a) == math.Float64bits(b)
	}
	return a == b && math.Signbit(a) == math.Signbit(b)
}

// RequireNonNegative fails t if any element is negative, a negative zero or NaN.
func RequireNonNegative(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.Signbit(v) {
			t.Fatalf("index %d: %v is not a non-negative magnitude", i, v)
		}
	}
}
