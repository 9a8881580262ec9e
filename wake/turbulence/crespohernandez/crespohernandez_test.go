package crespohernandez

import (
	"testing"

	"github.com/nrel/florisgo/wake"
)

func TestNewZeroUpstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.TurbulenceInputs{AxialInduction: 0.3, TI: 0.06, RotorDiameter: 126, DX: []float64{-10, 0}})
	for i, v := range out {
		if v != 0 {
			t.Errorf("added turbulence at non-downstream point %d = %v, want 0", i, v)
		}
	}
}

func TestNewPositiveDownstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.TurbulenceInputs{AxialInduction: 0.3, TI: 0.06, RotorDiameter: 126, DX: []float64{500}})
	if out[0] <= 0 {
		t.Errorf("added turbulence downstream = %v, want > 0", out[0])
	}
}

func TestNewDecaysDownstream(t *testing.T) {
	fn := New(DefaultParams())
	near := fn(wake.TurbulenceInputs{AxialInduction: 0.3, TI: 0.06, RotorDiameter: 126, DX: []float64{200}})
	far := fn(wake.TurbulenceInputs{AxialInduction: 0.3, TI: 0.06, RotorDiameter: 126, DX: []float64{2000}})
	if far[0] >= near[0] {
		t.Errorf("added turbulence should decay downstream (downstream exponent is negative): near=%v far=%v", near[0], far[0])
	}
}
