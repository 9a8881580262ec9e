package floris

import (
	"math"
	"testing"
)

func testSpec() *TurbineSpec {
	spec := &TurbineSpec{
		Name:          "test_turbine",
		RotorDiameter: 126,
		HubHeight:     90,
		PP:            2,
		PT:            2,
		RefDensity:    1.225,
		WindSpeeds:    []float64{3, 8, 15, 25},
		CtTable:       []float64{0.8, 0.78, 0.3, 0.1},
		CpTable:       []float64{0.2, 0.45, 0.3, 0.05},
	}
	spec.BuildInterpolators()
	return spec
}

func TestRotorAverageIsBetweenMinAndMax(t *testing.T) {
	u := []float64{6, 7, 8, 9}
	avg := rotorAverage(u)
	if avg < 6 || avg > 9 {
		t.Errorf("rotorAverage(%v) = %v, want within [6,9]", u, avg)
	}
}

func TestRotorAverageEmpty(t *testing.T) {
	if got := rotorAverage(nil); got != 0 {
		t.Errorf("rotorAverage(nil) = %v, want 0", got)
	}
}

func TestTurbineCtClamped(t *testing.T) {
	spec := testSpec()
	ct := turbineCt(8, 0, 0, spec)
	if ct <= 0 || ct >= 1 {
		t.Errorf("turbineCt = %v, want within (0,1)", ct)
	}
}

func TestTurbineCtDecreasesWithYaw(t *testing.T) {
	spec := testSpec()
	ct0 := turbineCt(8, 0, 0, spec)
	ct30 := turbineCt(8, degToRad(30), 0, spec)
	if ct30 >= ct0 {
		t.Errorf("turbineCt at 30deg yaw (%v) should be less than at 0deg (%v)", ct30, ct0)
	}
}

func TestAxialInductionNonNegative(t *testing.T) {
	spec := testSpec()
	for _, v := range spec.WindSpeeds {
		a := axialInduction(v, 0, 0, spec)
		if a < 0 {
			t.Errorf("axialInduction(%v) = %v, want >= 0", v, a)
		}
	}
}

func TestTurbinePowerZeroBelowCutIn(t *testing.T) {
	spec := testSpec()
	if p := turbinePower(1.225, 1, 0, 0, spec); p != 0 {
		t.Errorf("turbinePower below cut-in = %v, want 0", p)
	}
}

func TestTurbinePowerPositiveAboveCutIn(t *testing.T) {
	spec := testSpec()
	p := turbinePower(1.225, 8, 0, 0, spec)
	if p <= 0 {
		t.Errorf("turbinePower(8 m/s) = %v, want > 0", p)
	}
}

func TestTurbinePowerScalesWithAirDensity(t *testing.T) {
	spec := testSpec()
	low := turbinePower(1.0, 8, 0, 0, spec)
	high := turbinePower(1.225, 8, 0, 0, spec)
	if high <= low {
		t.Errorf("turbinePower should increase with air density: got %v at rho=1.0, %v at rho=1.225", low, high)
	}
}

func TestSquare(t *testing.T) {
	if got, want := square(3), 9.0; got != want {
		t.Errorf("square(3) = %v, want %v", got, want)
	}
	if got := square(math.Sqrt(2)); math.Abs(got-2) > 1e-9 {
		t.Errorf("square(sqrt(2)) = %v, want ~2", got)
	}
}
