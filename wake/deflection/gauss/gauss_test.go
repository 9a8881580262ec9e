package gauss

import (
	"testing"

	"github.com/nrel/florisgo/wake"
)

func TestNewZeroUpstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.DeflectionInputs{
		Ct: 0.8, YawRad: 0.25, TI: 0.06, RotorDiameter: 126, DX: []float64{-10},
	})
	if out.DY[0] != 0 {
		t.Errorf("deflection upstream = %v, want 0", out.DY[0])
	}
}

func TestNewZeroDeflectionWithoutYaw(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.DeflectionInputs{
		Ct: 0.8, YawRad: 0, TI: 0.06, RotorDiameter: 126, DX: []float64{500, 2000},
	})
	for i, v := range out.DY {
		if v != 0 {
			t.Errorf("deflection with zero yaw at point %d = %v, want 0", i, v)
		}
	}
}

func TestNewDeflectsWithYaw(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.DeflectionInputs{
		Ct: 0.8, YawRad: 0.25, TI: 0.06, RotorDiameter: 126, DX: []float64{500, 2000},
	})
	for i, v := range out.DY {
		if v == 0 {
			t.Errorf("deflection with nonzero yaw at point %d = 0, want nonzero", i)
		}
	}
}
