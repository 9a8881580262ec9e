package floris

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// TurbineSpec describes one turbine's geometry and performance tables.
// It is immutable once loaded: the same *TurbineSpec may be shared by
// every turbine position of a given type in a Farm.
type TurbineSpec struct {
	Name string

	RotorDiameter float64 // m
	HubHeight     float64 // m
	TSR           float64 // tip-speed ratio, informational
	PP            float64 // yaw power exponent
	PT            float64 // tilt power exponent
	RefDensity    float64 // kg/m^3, reference air density for Cp/Ct tables

	// Power-thrust table, monotonic in wind speed.
	WindSpeeds []float64
	CtTable    []float64
	CpTable    []float64
	PowerTable []float64 // W, optional; power is computed from CpTable, so this table is not used in a solve

	ctInterp    interp.FittedInterpolator
	cpInterp    interp.FittedInterpolator
	powerInterp interp.FittedInterpolator
}

// Validate checks the invariants from the data model: monotonic wind
// speeds and matching table lengths.
func (t *TurbineSpec) Validate() error {
	var errs ConfigErrors
	if t.RotorDiameter <= 0 {
		errs = append(errs, &ConfigError{Field: t.Name + ".rotor_diameter", Reason: "must be positive"})
	}
	if len(t.WindSpeeds) == 0 {
		errs = append(errs, &ConfigError{Field: t.Name + ".power_thrust_table.wind_speed", Reason: "must not be empty"})
	}
	if len(t.CtTable) != len(t.WindSpeeds) || len(t.CpTable) != len(t.WindSpeeds) {
		errs = append(errs, &ConfigError{Field: t.Name + ".power_thrust_table", Reason: "thrust and power tables must have the same length as wind_speed"})
	}
	if !sort.Float64sAreSorted(t.WindSpeeds) {
		errs = append(errs, &ConfigError{Field: t.Name + ".power_thrust_table.wind_speed", Reason: "must be monotonically increasing"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildInterpolators prepares the linearly-interpolated, clamped lookup
// functions used by Ct/Cp/power; values outside the table range clamp to
// the nearest endpoint. Callers outside this package that construct a
// TurbineSpec directly (e.g. turbinelibrary) must call this once before
// the spec is used in a solve; Load/NewSolver call it automatically for
// specs they resolve themselves.
func (t *TurbineSpec) BuildInterpolators() {
	t.ctInterp = fitClampedLinear(t.WindSpeeds, t.CtTable)
	t.cpInterp = fitClampedLinear(t.WindSpeeds, t.CpTable)
	if len(t.PowerTable) == len(t.WindSpeeds) && len(t.PowerTable) > 0 {
		t.powerInterp = fitClampedLinear(t.WindSpeeds, t.PowerTable)
	}
}

func fitClampedLinear(x, y []float64) interp.FittedInterpolator {
	pl := new(interp.PiecewiseLinear)
	if err := pl.Fit(x, y); err != nil {
		// A single-point table is a constant function; PiecewiseLinear
		// requires at least two points, so fall back to a degenerate
		// two-point table spanning the single value.
		if len(x) == 1 {
			pl2 := new(interp.PiecewiseLinear)
			_ = pl2.Fit([]float64{x[0], x[0] + 1}, []float64{y[0], y[0]})
			return pl2
		}
		panic(err)
	}
	return pl
}

// ctAt returns the table's thrust coefficient at wind speed v, clamping v
// into the table's domain.
func (t *TurbineSpec) ctAt(v float64) float64 {
	return t.ctInterp.Predict(clamp(v, t.WindSpeeds[0], t.WindSpeeds[len(t.WindSpeeds)-1]))
}

// cpAt returns the table's power coefficient at wind speed v, clamped.
func (t *TurbineSpec) cpAt(v float64) float64 {
	return t.cpInterp.Predict(clamp(v, t.WindSpeeds[0], t.WindSpeeds[len(t.WindSpeeds)-1]))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
