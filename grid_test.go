package floris

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestDeviationDegAtReferenceDirection(t *testing.T) {
	if got := deviationDeg(270); got != 0 {
		t.Errorf("deviationDeg(270) = %v, want 0", got)
	}
}

func TestDeviationDegWrapsAround(t *testing.T) {
	got := deviationDeg(0)
	// 0 - 270 = -270, mod 360 => 90, negated => -90
	if math.Abs(got-(-90)) > 1e-9 {
		t.Errorf("deviationDeg(0) = %v, want -90", got)
	}
}

func TestNewTurbineGridSortsUpstreamToDownstream(t *testing.T) {
	f := testFarm()
	grid := NewTurbineGrid(f, []float64{270}, 1, 3)

	order := grid.SortedIndices[0]
	if len(order) != 3 {
		t.Fatalf("expected 3 turbines in sorted order, got %d", len(order))
	}
	// At wind direction 270 the wind-aligned frame coincides with the farm
	// frame, so turbines at x=0,500,1000 should sort in that order.
	for i := 0; i < len(order)-1; i++ {
		a := grid.X.turbinePoints(0, 0, i)[0]
		b := grid.X.turbinePoints(0, 0, i+1)[0]
		if a > b {
			t.Errorf("turbine %d x (%v) should not exceed turbine %d x (%v) in sorted order", i, a, i+1, b)
		}
	}
}

func TestUnsortedIndicesInvertsSortedIndices(t *testing.T) {
	f := testFarm()
	grid := NewTurbineGrid(f, []float64{90}, 1, 3)
	for origIdx, k := range grid.UnsortedIndices[0] {
		if grid.SortedIndices[0][k] != origIdx {
			t.Errorf("UnsortedIndices is not the inverse of SortedIndices at original index %d", origIdx)
		}
	}
}

func TestArgsortStableIsStableOnTies(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}
	got := argsortStable(pts)
	for i, v := range got {
		if v != i {
			t.Errorf("argsortStable on tied X values should preserve original order: got %v", got)
		}
	}
}
