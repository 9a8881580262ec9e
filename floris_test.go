package floris

import (
	"testing"
)

// inlineLibrary is a minimal floris.TurbineLibrary for tests that never
// touch disk.
type inlineLibrary struct{ spec *TurbineSpec }

func (l inlineLibrary) Lookup(name string) (*TurbineSpec, error) { return l.spec, nil }

func twoTurbineConfig() *Config {
	cfg := DefaultInputs
	cfg.Farm.LayoutX = []float64{0, 5 * 126}
	cfg.Farm.LayoutY = []float64{0, 0}
	cfg.Farm.TurbineType = []string{"test_turbine"}
	cfg.FlowField.WindDirections = []float64{270}
	cfg.FlowField.WindSpeeds = []float64{8}
	cfg.FlowField.TurbulenceIntensity = []float64{0.06}
	return &cfg
}

func newTestSolver(t *testing.T, cfg *Config) *Solver {
	t.Helper()
	s, err := NewSolver(cfg, inlineLibrary{testSpec()})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	return s
}

func TestSolveResultsAreReadableOnlyAfterSolve(t *testing.T) {
	s := newTestSolver(t, twoTurbineConfig())
	if _, err := s.RotorAveragedVelocity(); err == nil {
		t.Error("expected a StateError before Solve() has been called")
	}
	if _, err := s.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if _, err := s.RotorAveragedVelocity(); err != nil {
		t.Errorf("expected RotorAveragedVelocity to succeed after Solve: %v", err)
	}
}

func TestDownstreamTurbineSeesLowerVelocityThanUpstream(t *testing.T) {
	s := newTestSolver(t, twoTurbineConfig())
	if _, err := s.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	velocity, err := s.RotorAveragedVelocity()
	if err != nil {
		t.Fatal(err)
	}
	upstream := velocity.At(0, 0, 0)
	downstream := velocity.At(0, 0, 1)
	if downstream >= upstream {
		t.Errorf("downstream turbine velocity (%v) should be less than upstream (%v) at wind direction 270", downstream, upstream)
	}
}

func TestNoWakeLeavesVelocitiesUnaffected(t *testing.T) {
	cfg := twoTurbineConfig()
	cfg.Wake.NoWake = true
	s := newTestSolver(t, cfg)
	if _, err := s.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	velocity, err := s.RotorAveragedVelocity()
	if err != nil {
		t.Fatal(err)
	}
	upstream := velocity.At(0, 0, 0)
	downstream := velocity.At(0, 0, 1)
	if upstream != downstream {
		t.Errorf("with no_wake=true both turbines should see the same inflow: upstream=%v downstream=%v", upstream, downstream)
	}
}

func TestPowersAreNonNegative(t *testing.T) {
	s := newTestSolver(t, twoTurbineConfig())
	if _, err := s.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	power, err := s.TurbinePowers()
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range power.Data {
		if p < 0 {
			t.Errorf("power[%d] = %v, want >= 0", i, p)
		}
	}
}

func TestFarmPowerSumsTurbinePowers(t *testing.T) {
	s := newTestSolver(t, twoTurbineConfig())
	if _, err := s.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	power, err := s.TurbinePowers()
	if err != nil {
		t.Fatal(err)
	}
	farmPower, err := s.FarmPower()
	if err != nil {
		t.Fatal(err)
	}
	want := power.At(0, 0, 0) + power.At(0, 0, 1)
	if got := farmPower[0]; absDiff(got, want) > 1e-6 {
		t.Errorf("FarmPower()[0] = %v, want %v", got, want)
	}
}

func TestResultsAreDeterministicAcrossRuns(t *testing.T) {
	cfg := twoTurbineConfig()
	cfg.FlowField.WindDirections = []float64{0, 90, 180, 270}
	cfg.FlowField.WindSpeeds = []float64{6, 8, 10}

	s1 := newTestSolver(t, cfg)
	if _, err := s1.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	v1, err := s1.RotorAveragedVelocity()
	if err != nil {
		t.Fatal(err)
	}

	s2 := newTestSolver(t, cfg)
	if _, err := s2.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	v2, err := s2.RotorAveragedVelocity()
	if err != nil {
		t.Fatal(err)
	}

	for i := range v1.Data {
		if v1.Data[i] != v2.Data[i] {
			t.Errorf("result at index %d differs between runs: %v vs %v", i, v1.Data[i], v2.Data[i])
		}
	}
}

func TestResetOverridesLayoutWithoutChangingTurbineTypes(t *testing.T) {
	s := newTestSolver(t, twoTurbineConfig())
	next, err := s.Reset(ResetOverrides{
		LayoutX: []float64{0, 10 * 126},
		LayoutY: []float64{0, 0},
	})
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := next.farm.Layout[1].X; got != 10*126 {
		t.Errorf("Reset did not apply the new layout: got x=%v", got)
	}
	if _, err := next.Solve(); err != nil {
		t.Errorf("solve after Reset: %v", err)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
