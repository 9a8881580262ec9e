package floris

import (
	"math"
	"testing"
)

func TestTurbineSpecValidateRejectsMismatchedTables(t *testing.T) {
	spec := &TurbineSpec{
		Name: "bad", RotorDiameter: 100,
		WindSpeeds: []float64{3, 8, 15},
		CtTable:    []float64{0.8, 0.7},
		CpTable:    []float64{0.2, 0.4, 0.3},
	}
	if err := spec.Validate(); err == nil {
		t.Error("expected a validation error for mismatched table lengths")
	}
}

func TestTurbineSpecValidateRejectsNonMonotonicSpeeds(t *testing.T) {
	spec := &TurbineSpec{
		Name: "bad", RotorDiameter: 100,
		WindSpeeds: []float64{8, 3, 15},
		CtTable:    []float64{0.8, 0.7, 0.3},
		CpTable:    []float64{0.2, 0.4, 0.3},
	}
	if err := spec.Validate(); err == nil {
		t.Error("expected a validation error for non-monotonic wind speeds")
	}
}

func TestCtAtClampsBelowRange(t *testing.T) {
	spec := testSpec()
	lo := spec.ctAt(spec.WindSpeeds[0])
	below := spec.ctAt(spec.WindSpeeds[0] - 10)
	if below != lo {
		t.Errorf("ctAt below table range = %v, want clamped value %v", below, lo)
	}
}

func TestCtAtClampsAboveRange(t *testing.T) {
	spec := testSpec()
	hi := spec.ctAt(spec.WindSpeeds[len(spec.WindSpeeds)-1])
	above := spec.ctAt(spec.WindSpeeds[len(spec.WindSpeeds)-1] + 10)
	if above != hi {
		t.Errorf("ctAt above table range = %v, want clamped value %v", above, hi)
	}
}

func TestCtAtInterpolatesBetweenTablePoints(t *testing.T) {
	spec := testSpec() // WindSpeeds: 3, 8, 15, 25; CtTable: 0.8, 0.78, 0.3, 0.1
	mid := spec.ctAt(5.5)
	lo, hi := spec.CtTable[0], spec.CtTable[1]
	if mid < math.Min(lo, hi) || mid > math.Max(lo, hi) {
		t.Errorf("ctAt(5.5) = %v, want within [%v, %v]", mid, lo, hi)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := clamp(-1, 0, 10); got != 0 {
		t.Errorf("clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := clamp(11, 0, 10); got != 10 {
		t.Errorf("clamp(11, 0, 10) = %v, want 10", got)
	}
}
