package empiricalgauss

import (
	"testing"

	"github.com/nrel/florisgo/wake"
)

func TestNewZeroUpstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.VelocityDeficitInputs{
		Ct: 0.8, TI: 0.06, RotorDiameter: 126, UpstreamVelocity: 8,
		DX: []float64{-10}, DY: []float64{0}, DZ: []float64{0},
		DeflectionY: []float64{0}, DeflectionZ: []float64{0},
	})
	if out[0] != 0 {
		t.Errorf("deficit upstream = %v, want 0", out[0])
	}
}

func TestNewPositiveOnAxisDownstream(t *testing.T) {
	fn := New(DefaultParams())
	out := fn(wake.VelocityDeficitInputs{
		Ct: 0.8, TI: 0.06, RotorDiameter: 126, UpstreamVelocity: 8,
		DX: []float64{500}, DY: []float64{0}, DZ: []float64{0},
		DeflectionY: []float64{0}, DeflectionZ: []float64{0},
	})
	if out[0] <= 0 {
		t.Errorf("on-axis downstream deficit = %v, want > 0", out[0])
	}
}

func TestExpandedWidthIsMonotonic(t *testing.T) {
	rates := []float64{0.23, 0.005}
	bp := []float64{1}
	w1 := expandedWidth(0.5, rates, bp, 2)
	w2 := expandedWidth(5, rates, bp, 2)
	if w2 <= w1 {
		t.Errorf("expandedWidth should grow with downstream distance: w1=%v w2=%v", w1, w2)
	}
}

func TestExpandedWidthZeroAtOrigin(t *testing.T) {
	if got := expandedWidth(0, []float64{0.23}, []float64{0}, 2); got != 0 {
		t.Errorf("expandedWidth(0) = %v, want 0", got)
	}
}
