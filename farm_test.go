package floris

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func testFarm() *Farm {
	spec := testSpec()
	layout := []geom.Point{{X: 0, Y: 0}, {X: 500, Y: 0}, {X: 1000, Y: 0}}
	return &Farm{
		Layout: layout,
		Specs:  []*TurbineSpec{spec, spec, spec},
		Yaw:    newTensor3(1, 1, 3),
		Tilt:   newTensor3(1, 1, 3),
	}
}

func TestFarmValidateAcceptsWellFormedFarm(t *testing.T) {
	if err := testFarm().validate(); err != nil {
		t.Errorf("unexpected validate error: %v", err)
	}
}

func TestFarmValidateRejectsMismatchedSpecs(t *testing.T) {
	f := testFarm()
	f.Specs = f.Specs[:2]
	if err := f.validate(); err == nil {
		t.Error("expected a validation error for mismatched Specs length")
	}
}

func TestFarmValidateRejectsOutOfRangeYaw(t *testing.T) {
	f := testFarm()
	f.Yaw.set(0, 0, 0, 91)
	if err := f.validate(); err == nil {
		t.Error("expected a validation error for yaw outside [-90, 90]")
	}
}

func TestRotatedLayoutPreservesPairwiseDistances(t *testing.T) {
	f := testFarm()
	want := dist(f.Layout[0], f.Layout[1])

	rotated := f.rotatedLayout(37)
	got := dist(rotated[0], rotated[1])
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation changed pairwise distance: got %v, want %v", got, want)
	}
}

func TestRotatedLayoutIdentityAtZero(t *testing.T) {
	f := testFarm()
	rotated := f.rotatedLayout(0)
	for i, p := range f.Layout {
		if math.Abs(p.X-rotated[i].X) > 1e-9 || math.Abs(p.Y-rotated[i].Y) > 1e-9 {
			t.Errorf("rotatedLayout(0) point %d = %v, want %v", i, rotated[i], p)
		}
	}
}

func dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
