package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffMixedPrecision(t *testing.T) {
	d, err := MaxAbsDiff([]float32{0.5, 0.25}, []float64{0.5, 0.25})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for exactly representable values", d)
	}
}

func TestRelativeSquaredError(t *testing.T) {
	e, err := RelativeSquaredError([]float64{1, 1}, []float64{1, 0})
	if err != nil {
		t.Fatalf("RelativeSquaredError error: %v", err)
	}
	if e != 1 {
		t.Fatalf("RelativeSquaredError = %v, want 1", e)
	}

	e, err = RelativeSquaredError([]float64{0.5}, []float64{0})
	if err != nil || e != 0.25 {
		t.Fatalf("silent reference: e=%v err=%v, want 0.25", e, err)
	}

	if _, err := RelativeSquaredError([]float64{1}, []float64{}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float32{1, 2}, []float64{1, 2.0000001}, 1e-6)
	RequireFinite(t, []float64{0, -1, 1e300})
}
