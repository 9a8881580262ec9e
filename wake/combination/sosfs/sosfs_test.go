package sosfs

import (
	"math"
	"testing"
)

func TestNewCombinesAsRSS(t *testing.T) {
	fn := New()
	out := fn([]float64{0.3}, []float64{0.4})
	if math.Abs(out[0]-0.5) > 1e-9 {
		t.Errorf("sosfs(0.3, 0.4) = %v, want 0.5", out[0])
	}
}

func TestNewZeroWithZeroInputs(t *testing.T) {
	fn := New()
	out := fn([]float64{0}, []float64{0})
	if out[0] != 0 {
		t.Errorf("sosfs(0, 0) = %v, want 0", out[0])
	}
}

func TestNewIsCommutative(t *testing.T) {
	fn := New()
	a := fn([]float64{0.2}, []float64{0.6})
	b := fn([]float64{0.6}, []float64{0.2})
	if math.Abs(a[0]-b[0]) > 1e-12 {
		t.Errorf("sosfs should be commutative: a=%v b=%v", a[0], b[0])
	}
}
