package gauss

import (
	"testing"

	"github.com/nrel/florisgo/wake"
)

func TestNewZeroUpstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.VelocityDeficitInputs{
		Ct: 0.8, YawRad: 0, TI: 0.06, RotorDiameter: 126, UpstreamVelocity: 8,
		DX: []float64{-50}, DY: []float64{0}, DZ: []float64{0},
		DeflectionY: []float64{0}, DeflectionZ: []float64{0},
	})
	if out[0] != 0 {
		t.Errorf("deficit upstream = %v, want 0", out[0])
	}
}

func TestNewPositiveOnAxisFarWake(t *testing.T) {
	fn := New(DefaultParams())
	// With these inputs the near-wake length x0 is about 1667 m, so 2500 m
	// is in the far wake.
	out := fn(wake.VelocityDeficitInputs{
		Ct: 0.8, YawRad: 0, TI: 0.06, RotorDiameter: 126, UpstreamVelocity: 8,
		DX: []float64{2500}, DY: []float64{0}, DZ: []float64{0},
		DeflectionY: []float64{0}, DeflectionZ: []float64{0},
	})
	if out[0] <= 0 || out[0] >= 8 {
		t.Errorf("far-wake on-axis deficit = %v, want within (0, 8)", out[0])
	}
}

func TestNewDecaysOffAxis(t *testing.T) {
	fn := New(DefaultParams())
	in := wake.VelocityDeficitInputs{
		Ct: 0.8, YawRad: 0, TI: 0.06, RotorDiameter: 126, UpstreamVelocity: 8,
		DX: []float64{1000, 1000}, DY: []float64{0, 300}, DZ: []float64{0, 0},
		DeflectionY: []float64{0, 0}, DeflectionZ: []float64{0, 0},
	}
	out := fn(in)
	if out[1] >= out[0] {
		t.Errorf("deficit off-axis (%v) should be less than on-axis (%v)", out[1], out[0])
	}
}

func TestNearWakeLengthPositive(t *testing.T) {
	x0 := NearWakeLength(0.8, 0.06, 0, 0.58, 0.077, 126)
	if x0 <= 0 {
		t.Errorf("NearWakeLength = %v, want > 0", x0)
	}
}
